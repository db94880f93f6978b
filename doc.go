// Package namekit provides a deterministic, reversible naming convention for
// cloud resources provisioned in named groups. Names encode which group a
// resource belongs to, so later operations can list, filter, and clean up
// resources by parsing names alone, without extra bookkeeping.
//
// # Package Organization
//
//	github.com/dmitrymomot/namekit/pkg/groupname    - Core naming convention: encode, decode, and membership predicates
//	github.com/dmitrymomot/namekit/pkg/resourcename - Resource-kind helpers mapping nodes, key pairs, security groups, and networks onto the convention
//	github.com/dmitrymomot/namekit/pkg/config       - Type-safe environment variable loading for configuration structs
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/namekit/pkg/groupname
//	go doc -all github.com/dmitrymomot/namekit/pkg/resourcename
package namekit

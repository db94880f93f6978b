// Package groupname encodes logical group names into provider-safe resource
// names, and recovers the group from names encoded earlier.
//
// Provisioning code needs to tell the resources it created apart from
// resources the user made by hand: if the system creates a security group, it
// must be able to delete it during cleanup without touching anything else.
// The convention here answers that with pure string structure: an optional
// prefix marking system-managed resources, a delimiter, the group, and (for
// names that are created once per group member rather than once per group) a
// short random suffix. Nothing is stored; decoding works from the name alone.
//
// # Name shapes
//
// Two shapes exist, distinguished by how many resources per group carry them:
//
//   - shared: one per group, fully retrievable via the provider API.
//     Example: a security group or network. Shape: [prefix-]group.
//   - unique: created redundantly per member, or not fully retrievable via
//     API. Example: node names, or key pairs whose private half never leaves
//     the client, forcing a fresh key per creation call. Shape:
//     [prefix-]group-suffix.
//
// With prefix "jclouds" and group "mycluster", the shared name is
// "jclouds-mycluster" and unique names look like "jclouds-mycluster-f3e",
// then "jclouds-mycluster-e64" on the next call.
//
// # Uniqueness
//
// Unique names are collision-unlikely, never collision-free. The default
// three hex characters give 4096 combinations, enough to land on an unused
// name in one or two tries, but the provider remains the judge. Creation code
// that hits a name conflict calls UniqueName again and retries; no retry
// policy lives in this package.
//
// # Delimiter nesting
//
// Groups are hostname style (letters, digits, hyphen) and the default
// delimiter is the hyphen, so a group may contain the delimiter itself.
// Decoding resolves this greedily from the right: only the final segment is
// considered a suffix, and only when it has exactly the configured suffix
// length and alphabet. The group "my-cluster" therefore survives a unique
// round-trip intact. The flip side is that a shared name whose group ends in
// a suffix-shaped segment ("mycluster-abc") is claimed by the unique
// interpretation when both are tried; ExtractGroup documents that order.
//
// # Usage
//
//	import "github.com/dmitrymomot/namekit/pkg/groupname"
//
//	factory, err := groupname.New(groupname.WithPrefix("jclouds"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scoped := factory.Create()
//	shared, _ := scoped.SharedName("mycluster")   // "jclouds-mycluster"
//	unique, _ := scoped.UniqueName("mycluster")   // "jclouds-mycluster-f3e"
//
//	group, ok := scoped.ExtractGroup(unique)      // "mycluster", true
//	mine := scoped.ContainsGroup("mycluster")
//	mine("jclouds-mycluster-e64")                 // true
//	mine("customers-production-db")               // false
//
// Top-level resources that are already scoped unambiguously use
// factory.CreateWithoutPrefix(), which drops the prefix segment from both
// encoding and decoding.
//
// # Error Handling
//
// Encoding rejects bad input: ErrEmptyGroup and ErrInvalidGroup signal a
// group outside the permitted character set, matched with errors.Is. Decoding
// never returns an error, because arbitrary strings, including names the user
// created manually, are expected input; every decode reports a comma-ok
// false instead.
//
// # Thread Safety
//
// Conventions are stateless and safe for concurrent use. The default suffix
// source reads crypto/rand per call and shares no mutable state between
// callers.
package groupname

// Package resourcename maps provisioned resource kinds onto the group naming
// convention.
//
// Provisioning code needs to tell resources it created apart from resources
// the user made by hand, so that cleanup can delete the former without ever
// touching the latter. The convention encodes group membership into each
// resource name; this package fixes which name shape each resource kind uses.
//
// Resources shared across a whole group and fully retrievable from the
// provider, such as security groups and networks, take the shared shape so
// repeated provisioning converges on one resource. Resources created per
// instance or per call, such as key pairs, take the unique shape. Node names
// also take the unique shape but omit the prefix, since providers surface
// them directly as hostnames.
//
// # Usage
//
//	factory, err := groupname.New(groupname.WithPrefix("jclouds"))
//	if err != nil {
//		// handle error
//	}
//	namer := resourcename.New(factory)
//
//	sg, _ := namer.SecurityGroup("mycluster")   // "jclouds-mycluster"
//	key, _ := namer.KeyPair("mycluster")        // "jclouds-mycluster-f3e"
//	node, _ := namer.Node("mycluster")          // "mycluster-a1b"
//
// # Thread Safety
//
// A Namer is immutable after construction and safe for concurrent use.
package resourcename

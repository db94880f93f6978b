package resourcename

import "github.com/dmitrymomot/namekit/pkg/groupname"

// Namer derives resource names for the kinds a provisioning run creates.
// Prefixed resources form the managed set that cleanup may delete; node
// names stay unprefixed and outside it.
type Namer struct {
	scoped   groupname.Convention
	topLevel groupname.Convention
}

// New binds both conventions of the factory into a Namer.
func New(f *groupname.Factory) *Namer {
	return &Namer{
		scoped:   f.Create(),
		topLevel: f.CreateWithoutPrefix(),
	}
}

// Node returns a fresh name for a compute instance in the group. Node names
// omit the prefix because providers expose them as hostnames; they are
// destroyed by id, not discovered by name, so they stay out of the managed
// set.
func (n *Namer) Node(group string) (string, error) {
	return n.topLevel.UniqueName(group)
}

// KeyPair returns a fresh name for a key pair serving the group. Key
// material is not retrievable from providers after creation, so each
// provisioning call names its own.
func (n *Namer) KeyPair(group string) (string, error) {
	return n.scoped.UniqueName(group)
}

// SecurityGroup returns the canonical security group name for the group.
// Repeated provisioning runs converge on the same name.
func (n *Namer) SecurityGroup(group string) (string, error) {
	return n.scoped.SharedName(group)
}

// Network returns the canonical network name for the group.
func (n *Namer) Network(group string) (string, error) {
	return n.scoped.SharedName(group)
}

// InGroup returns a predicate matching managed resource names that belong
// to the group, in either shape.
func (n *Namer) InGroup(group string) func(string) bool {
	return n.scoped.ContainsGroup(group)
}

// Managed returns a predicate matching any resource name this convention
// produced. Cleanup uses it to select deletion candidates.
func (n *Namer) Managed() func(string) bool {
	return n.scoped.ContainsAnyGroup()
}

// GroupOf recovers the group from a managed resource name.
func (n *Namer) GroupOf(name string) (string, bool) {
	return n.scoped.ExtractGroup(name)
}

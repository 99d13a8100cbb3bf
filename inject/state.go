package inject

import (
	"slices"

	"github.com/hashicorp/go-hclog"

	"shapeshift/diagnostic"
	"shapeshift/value"
)

// Reserved store keys and meta keys.
const (
	TopKey  = "$TOP"
	ErrsKey = "$ERRS"
	KeyKey  = "`$KEY`"
	MetaKey = "`$META`"
	OpenKey = "`$OPEN`"

	// MetaKeyName is the annotation property holding an originating key.
	MetaKeyName = "KEY"
)

// Mode is the phase an injection runs in.
type Mode string

const (
	ModeKeyPre  Mode = "key:pre"
	ModeVal     Mode = "val"
	ModeKeyPost Mode = "key:post"
)

// IsKey reports both key phases.
func (m Mode) IsKey() bool {
	return m == ModeKeyPre || m == ModeKeyPost
}

// Injector is a command. It receives the injection state, the resolved
// value, the current data node, the reference that resolved to it and the
// store, and returns the injected result.
type Injector func(inj *Injection, val any, current any, ref string, store any) any

// Handler post-processes every resolved reference.
type Handler func(inj *Injection, val any, current any, ref string, store any) any

// Modify is called after every value has been injected.
type Modify func(val any, key string, parent any, inj *Injection, current any, store any)

// Injection is the traversal state of one inject call. A fresh Injection is
// derived for every key; Keys and KeyI form the iteration cursor over the
// parent's keys and may be changed by commands.
type Injection struct {
	Mode Mode
	// Full is set when a string was a single reference.
	Full bool
	KeyI int
	Keys []string
	Key  string
	Val  any
	// Parent is the node that holds Key.
	Parent any
	Path   []string
	// Nodes are the ancestors of Parent, ending with Parent.
	Nodes   []any
	Handler Handler
	Errs    *diagnostic.Diagnostics
	Meta    map[string]any
	// Base is the store key holding the data.
	Base   string
	Modify Modify
	Logger hclog.Logger
}

// Root returns the state of a top level inject call for val. The value is
// held by a synthetic parent under TopKey. Errors go to the collector kept
// in the store under ErrsKey, if any.
func Root(val any, store any, modify Modify) *Injection {
	parent := value.Map{TopKey: val}

	errs, ok := value.GetProp(store, ErrsKey).(*diagnostic.Diagnostics)
	if !ok {
		errs = diagnostic.New()
	}

	return &Injection{
		Mode:    ModeVal,
		Keys:    []string{TopKey},
		Key:     TopKey,
		Val:     val,
		Parent:  parent,
		Path:    []string{TopKey},
		Nodes:   []any{parent},
		Handler: DefaultHandler,
		Errs:    errs,
		Meta:    map[string]any{},
		Base:    TopKey,
		Modify:  modify,
		Logger:  hclog.NewNullLogger(),
	}
}

// child returns the key:pre state for key, the keyI-th key of node.
func (inj *Injection) child(node any, keys []string, keyI int) *Injection {
	key := keys[keyI]

	return &Injection{
		Mode:    ModeKeyPre,
		KeyI:    keyI,
		Keys:    keys,
		Key:     key,
		Val:     value.GetProp(node, key),
		Parent:  node,
		Path:    append(slices.Clip(inj.Path), key),
		Nodes:   append(slices.Clip(inj.Nodes), node),
		Handler: inj.Handler,
		Errs:    inj.Errs,
		Meta:    inj.Meta,
		Base:    inj.Base,
		Modify:  inj.Modify,
		Logger:  inj.Logger,
	}
}

// Grandparent returns the node holding Parent, and the key Parent is held
// under. Both are zero at the root.
func (inj *Injection) Grandparent() (any, string) {
	n, p := len(inj.Nodes), len(inj.Path)
	if n < 2 || p < 2 {
		return nil, ""
	}

	return inj.Nodes[n-2], inj.Path[p-2]
}

// Replace writes val into the grandparent in place of Parent.
func (inj *Injection) Replace(val any) {
	gp, gk := inj.Grandparent()
	value.SetProp(gp, gk, val)
}

// Attached reports whether Parent is still held by its grandparent. Commands
// that replace the enclosing node detach it.
func (inj *Injection) Attached() bool {
	gp, gk := inj.Grandparent()
	if gp == nil {
		return true
	}

	return value.Same(value.GetProp(gp, gk), inj.Nodes[len(inj.Nodes)-1])
}

// Where renders Path without the synthetic root, for messages.
func (inj *Injection) Where() string {
	return value.Pathify(inj.Path, 1)
}

// Log returns the state's logger, or a logger that discards everything.
func (inj *Injection) Log() hclog.Logger {
	if inj == nil || inj.Logger == nil {
		return hclog.NewNullLogger()
	}

	return inj.Logger
}

// Sub injects val as a new root against store with the given current data.
// The nested call shares the collector, handler and hooks of inj.
func (inj *Injection) Sub(val any, store any, current any) any {
	root := Root(val, store, inj.Modify)
	root.Meta = inj.Meta
	root.Logger = inj.Logger
	if inj.Handler != nil {
		root.Handler = inj.Handler
	}
	if inj.Errs != nil {
		root.Errs = inj.Errs
	}

	return InjectWith(val, store, inj.Modify, current, root)
}

// Reinject puts node in place of Parent and injects its children, with
// current as the data node matching node. It returns node. Modify is not
// called for node itself; the caller's slot gets that as usual.
func (inj *Injection) Reinject(node any, store any, current any) any {
	gp, gk := inj.Grandparent()
	if gp == nil {
		return node
	}

	value.SetProp(gp, gk, node)

	slot := &Injection{
		Mode:    ModeVal,
		Keys:    []string{gk},
		Key:     gk,
		Val:     node,
		Parent:  gp,
		Path:    slices.Clip(inj.Path[:len(inj.Path)-1]),
		Nodes:   slices.Clip(inj.Nodes[:len(inj.Nodes)-1]),
		Handler: inj.Handler,
		Errs:    inj.Errs,
		Meta:    inj.Meta,
		Base:    inj.Base,
		Modify:  inj.Modify,
		Logger:  inj.Logger,
	}

	if value.IsNode(node) {
		injectNode(node, store, inj.Modify, value.Map{gk: current}, slot)
	}

	return node
}

package types

// TransactionRef is a reference to a transaction in the tangle: its
// position (trunk/branch approvals), the bundle it belongs to, and its
// ledger effect. It is a value copied out of the node's storage for
// the duration of a request.
type TransactionRef struct {
	Hash    Hash      `json:"hash" cramberry:"1"`
	Trunk   Hash      `json:"trunk" cramberry:"2"`
	Branch  Hash      `json:"branch" cramberry:"3"`
	Bundle  Hash      `json:"bundle" cramberry:"4"`
	Address Address   `json:"address" cramberry:"5"`
	Value   int64     `json:"value" cramberry:"6"`
	Time    Timestamp `json:"timestamp" cramberry:"7"`
	// Milestone that confirmed this transaction. Nil = unconfirmed.
	Confirmed *MilestoneIndex `json:"confirmed,omitempty" cramberry:"8"`
}

// NodeStatus is a point-in-time snapshot of the node's identity and
// sync state, taken by the node internals.
type NodeStatus struct {
	Name               string         `json:"name" cramberry:"1"`
	Version            string         `json:"version" cramberry:"2"`
	IsSynced           bool           `json:"isSynced" cramberry:"3"`
	LastMilestoneIndex MilestoneIndex `json:"lastMilestoneIndex" cramberry:"4"`
	LastMilestoneHash  Hash           `json:"lastMilestoneHash" cramberry:"5"`
	ConnectedPeers     uint32         `json:"connectedPeers" cramberry:"6"`
	// Optional feature names the node advertises, e.g. "submit".
	Features []string `json:"features,omitempty" cramberry:"7"`
}

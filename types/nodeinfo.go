package types

// NodeInfoRequest is the (empty) request for Service.NodeInfo.
type NodeInfoRequest struct{}

// NodeInfoResponse reports the node's identity and sync state.
type NodeInfoResponse struct {
	Name               string         `json:"name" cramberry:"1"`
	Version            string         `json:"version" cramberry:"2"`
	IsSynced           bool           `json:"isSynced" cramberry:"3"`
	LastMilestoneIndex MilestoneIndex `json:"lastMilestoneIndex" cramberry:"4"`
	LastMilestoneHash  Hash           `json:"lastMilestoneHash" cramberry:"5"`
	ConnectedPeers     uint32         `json:"connectedPeers" cramberry:"6"`
	Features           []string       `json:"features,omitempty" cramberry:"7"`
}

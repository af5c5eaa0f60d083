package types

// SubmitTransactionRequest attaches a new transaction to the tangle,
// approving the given trunk and branch transactions.
type SubmitTransactionRequest struct {
	Tx     Tx   `json:"tx" cramberry:"1"`
	Trunk  Hash `json:"trunk" cramberry:"2"`
	Branch Hash `json:"branch" cramberry:"3"`
}

// Check reports required fields absent from the wire payload.
func (r SubmitTransactionRequest) Check() error {
	if len(r.Tx) == 0 {
		return missing("tx")
	}
	if r.Trunk.IsZero() {
		return missing("trunk")
	}
	if r.Branch.IsZero() {
		return missing("branch")
	}
	return nil
}

// SubmitTransactionResponse reports the hash under which the
// transaction was attached. The submission is atomic: on error the
// node's state is unchanged.
type SubmitTransactionResponse struct {
	Hash Hash `json:"hash" cramberry:"1"`
}

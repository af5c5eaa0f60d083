package types

// TransactionByHashRequest asks for a single transaction.
type TransactionByHashRequest struct {
	Hash Hash `json:"hash" cramberry:"1"`
}

// Check reports required fields absent from the wire payload.
func (r TransactionByHashRequest) Check() error {
	if r.Hash.IsZero() {
		return missing("hash")
	}
	return nil
}

// TransactionByHashResponse carries the looked-up transaction.
// A hash unknown to the node is not an error: Transaction is nil.
type TransactionByHashResponse struct {
	Transaction *TransactionRef `json:"transaction,omitempty" cramberry:"1"`
}

// Found reports whether the lookup produced a transaction.
func (r TransactionByHashResponse) Found() bool { return r.Transaction != nil }

// TransactionsByBundleRequest resolves a bundle starting from an entry
// transaction.
type TransactionsByBundleRequest struct {
	Entry  Hash `json:"entry" cramberry:"1"`
	Bundle Hash `json:"bundle" cramberry:"2"`
}

// Check reports required fields absent from the wire payload.
func (r TransactionsByBundleRequest) Check() error {
	if r.Entry.IsZero() {
		return missing("entry")
	}
	if r.Bundle.IsZero() {
		return missing("bundle")
	}
	return nil
}

// TransactionsByBundleResponse maps each transaction hash of the
// bundle to its reference.
type TransactionsByBundleResponse struct {
	Transactions map[Hash]TransactionRef `json:"transactions"`
}

// TransactionsByAddressRequest lists transactions touching an address.
type TransactionsByAddressRequest struct {
	Address Address `json:"address" cramberry:"1"`
}

// Check reports required fields absent from the wire payload.
func (r TransactionsByAddressRequest) Check() error {
	if r.Address.IsZero() {
		return missing("address")
	}
	return nil
}

// TransactionsByAddressResponse carries the matching transaction
// hashes in tangle order. No matches = empty list, not an error.
type TransactionsByAddressResponse struct {
	Hashes []Hash `json:"hashes" cramberry:"1"`
}

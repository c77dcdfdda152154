package sdk

// Env is the per-instruction execution snapshot handed over by the host.
// Timestamp arrives as a string because some hosts send RFC3339 and some
// send unix seconds, callers normalize it once.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Intents     []Intent `json:"intents"`
}

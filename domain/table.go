package domain

type Table string

const (
	TableAuctions  Table = "auctions"
	TableBids      Table = "bids"
	TablePayTokens Table = "pay_tokens"
	TableNftItems  Table = "nft_items"
	TableLedger    Table = "ledger_accounts"
	TableCounters  Table = "counters"
)

package pbs

// FloorQuery asks a FloorProvider for the floor matching a currency, media
// type and size. Any dimension may be the wildcard "*".
type FloorQuery struct {
	Currency  string
	MediaType string
	Size      string
}

// Price is a currency-tagged floor value.
type Price struct {
	Currency   string
	FloorValue float64
}

// FloorProvider is the publisher's price-floor hook attached to a BidRequest.
//
// Implementations are external to this module and may fail arbitrarily; the
// adapter must treat any error as "no floor".
type FloorProvider interface {
	GetFloor(query FloorQuery) (Price, error)
}

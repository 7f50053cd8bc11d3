package domain

// EvidenceSource tells where a network address came from.
type EvidenceSource string

const (
	// EvidenceClaimed is an address reported by the client itself.
	EvidenceClaimed EvidenceSource = "claimed"
	// EvidenceObserved is the address the server saw the request arrive from.
	EvidenceObserved EvidenceSource = "observed"
)

// NetworkEvidence is the network identity presented when checking in.
type NetworkEvidence struct {
	Address string
	Source  EvidenceSource
}

// Presence is the result of a presence probe.
type Presence struct {
	OnOfficeNetwork bool
	ObservedAddress string
}

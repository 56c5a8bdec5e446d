package rulebook

// Currency conversion. Totals are stored in knuts, the smallest
// denomination.
const (
	KnutsPerSickle    = 29
	SicklesPerGalleon = 17
	KnutsPerGalleon   = KnutsPerSickle * SicklesPerGalleon // 493
)

// MoneyBreakdown is a knut total split into display denominations.
type MoneyBreakdown struct {
	Galleons int `json:"galleons"`
	Sickles  int `json:"sickles"`
	Knuts    int `json:"knuts"`
}

// Breakdown splits a knut total into galleons, sickles, and knuts.
// Negative totals break down as zero; stored totals never go below zero.
func Breakdown(totalKnuts int) MoneyBreakdown {
	if totalKnuts < 0 {
		totalKnuts = 0
	}
	galleons := totalKnuts / KnutsPerGalleon
	remainder := totalKnuts % KnutsPerGalleon
	return MoneyBreakdown{
		Galleons: galleons,
		Sickles:  remainder / KnutsPerSickle,
		Knuts:    remainder % KnutsPerSickle,
	}
}

// TotalKnuts converts a denominated amount back to knuts.
func TotalKnuts(galleons, sickles, knuts int) int {
	return galleons*KnutsPerGalleon + sickles*KnutsPerSickle + knuts
}

package aci

// CombinationDef describes one strength design load combination.
// Based on ACI 318-19 Table 5.3.1 - Load Combinations.
type CombinationDef struct {
	Key     string // U1..U7, insertion order is the code's equation order
	Name    string // code citation
	Formula string // symbolic form
}

// Combinations lists the seven Table 5.3.1 strength combinations in
// equation order. Which ones apply to a given beam depends on which
// loads were actually supplied; see the loads package.
var Combinations = []CombinationDef{
	{
		Key:     "U1",
		Name:    "Dead Load Only (ACI 318-19 Eq. 5.3.1a)",
		Formula: "1.4D",
	},
	{
		Key:     "U2",
		Name:    "Basic Load Combination (ACI 318-19 Eq. 5.3.1b)",
		Formula: "1.2D + 1.6L + 0.5(Lr/S/R)",
	},
	{
		Key:     "U3",
		Name:    "Roof/Snow/Rain Combination (ACI 318-19 Eq. 5.3.1c)",
		Formula: "1.2D + 1.6(Lr/S/R) + (L or 0.5W)",
	},
	{
		Key:     "U4",
		Name:    "Wind Load Combination (ACI 318-19 Eq. 5.3.1d)",
		Formula: "1.2D + 1.0W + L + 0.5(Lr/S/R)",
	},
	{
		Key:     "U5",
		Name:    "Seismic Load Combination (ACI 318-19 Eq. 5.3.1e)",
		Formula: "1.2D + 1.0E + L + 0.2S",
	},
	{
		Key:     "U6",
		Name:    "Wind Uplift (ACI 318-19 Eq. 5.3.1f)",
		Formula: "0.9D + 1.0W",
	},
	{
		Key:     "U7",
		Name:    "Seismic Uplift (ACI 318-19 Eq. 5.3.1g)",
		Formula: "0.9D + 1.0E",
	},
}

// Definition returns the combination metadata for a key.
func Definition(key string) (CombinationDef, bool) {
	for _, c := range Combinations {
		if c.Key == key {
			return c, true
		}
	}
	return CombinationDef{}, false
}

package catalog

// Default returns the built-in catalog of bright stars (J2000 coordinates).
// Ordered brightest first; this order is the catalog iteration order.
// Positions from the Yale Bright Star Catalog; physical parameters
// (distance, age, mass, spectral type) from published values, rounded.
func Default() Catalog {
	return New(defaultStars)
}

var defaultStars = []Star{
	{"sirius", "Sirius", 101.287, -16.716, -1.46, 8.6, 0.242, 2.06, "A1V"},
	{"canopus", "Canopus", 95.988, -52.696, -0.74, 310, 0.025, 8.0, "F0II"},
	{"arcturus", "Arcturus", 213.915, 19.182, -0.05, 36.7, 7.1, 1.08, "K0III"},
	{"vega", "Vega", 279.235, 38.784, 0.03, 25.0, 0.455, 2.14, "A0V"},
	{"capella", "Capella", 79.172, 45.998, 0.08, 42.9, 0.59, 2.57, "G8III"},
	{"rigel", "Rigel", 78.634, -8.202, 0.13, 860, 0.008, 21.0, "B8Ia"},
	{"procyon", "Procyon", 114.826, 5.225, 0.34, 11.5, 1.37, 1.50, "F5IV"},
	{"achernar", "Achernar", 24.429, -57.237, 0.46, 139, 0.063, 6.7, "B6V"},
	{"betelgeuse", "Betelgeuse", 88.793, 7.407, 0.50, 548, 0.008, 16.5, "M1Ia"},
	{"hadar", "Hadar", 210.956, -60.373, 0.61, 390, 0.014, 10.7, "B1III"},

	{"altair", "Altair", 297.696, 8.868, 0.76, 16.7, 1.2, 1.79, "A7V"},
	{"acrux", "Acrux", 186.650, -63.099, 0.76, 320, 0.011, 17.8, "B0.5IV"},
	{"aldebaran", "Aldebaran", 68.980, 16.509, 0.85, 65.3, 6.4, 1.16, "K5III"},
	{"antares", "Antares", 247.352, -26.432, 0.96, 550, 0.015, 12.0, "M1Ib"},
	{"spica", "Spica", 201.298, -11.161, 0.97, 250, 0.0125, 11.4, "B1III"},
	{"pollux", "Pollux", 116.329, 28.026, 1.14, 33.8, 0.724, 1.91, "K0III"},
	{"fomalhaut", "Fomalhaut", 344.413, -29.622, 1.16, 25.1, 0.44, 1.92, "A3V"},
	{"deneb", "Deneb", 310.358, 45.280, 1.25, 2615, 0.01, 19.0, "A2Ia"},
	{"mimosa", "Mimosa", 191.930, -59.689, 1.25, 280, 0.016, 16.0, "B0.5III"},
	{"regulus", "Regulus", 152.093, 11.967, 1.35, 79.3, 0.25, 3.8, "B7V"},

	{"adhara", "Adhara", 104.656, -28.972, 1.50, 430, 0.0225, 12.6, "B2II"},
	{"castor", "Castor", 113.650, 31.889, 1.58, 51.0, 0.37, 2.76, "A1V"},
	{"gacrux", "Gacrux", 187.791, -57.113, 1.63, 88.6, 2.5, 1.5, "M3.5III"},
	{"shaula", "Shaula", 263.402, -37.104, 1.63, 570, 0.01, 10.4, "B2IV"},
	{"bellatrix", "Bellatrix", 81.283, 6.350, 1.64, 250, 0.025, 8.6, "B2III"},
	{"elnath", "Elnath", 81.573, 28.608, 1.65, 134, 0.1, 5.0, "B7III"},
	{"alnilam", "Alnilam", 84.053, -1.202, 1.69, 2000, 0.006, 40.0, "B0Ia"},
	{"alnitak", "Alnitak", 85.190, -1.943, 1.77, 1260, 0.006, 33.0, "O9.5Ib"},
	{"alioth", "Alioth", 193.507, 55.960, 1.77, 82.6, 0.3, 2.91, "A1III"},
	{"dubhe", "Dubhe", 165.932, 61.751, 1.79, 123, 0.28, 4.25, "K0III"},

	{"mirfak", "Mirfak", 51.081, 49.861, 1.79, 510, 0.041, 8.5, "F5Ib"},
	{"wezen", "Wezen", 107.098, -26.393, 1.84, 1600, 0.012, 16.9, "F8Ia"},
	{"alkaid", "Alkaid", 206.885, 49.313, 1.86, 103.9, 0.01, 6.1, "B3V"},
	{"menkalinan", "Menkalinan", 89.882, 44.948, 1.90, 81.1, 0.57, 2.39, "A1IV"},
	{"alhena", "Alhena", 99.428, 16.399, 1.93, 109, 0.123, 2.81, "A0IV"},
	{"alphard", "Alphard", 141.897, -8.659, 2.00, 177, 0.42, 3.03, "K3II"},
	{"hamal", "Hamal", 31.793, 23.463, 2.00, 65.8, 3.4, 1.5, "K1III"},
	{"diphda", "Diphda", 10.897, -17.987, 2.02, 96.3, 1.0, 2.8, "K0III"},
	{"polaris", "Polaris", 37.954, 89.264, 2.02, 433, 0.07, 5.4, "F7Ib"},
	{"mizar", "Mizar", 200.981, 54.925, 2.04, 82.9, 0.37, 2.2, "A2V"},

	{"mirach", "Mirach", 17.433, 35.621, 2.05, 197, 4.0, 2.49, "M0III"},
	{"alpheratz", "Alpheratz", 2.097, 29.091, 2.06, 97, 0.06, 3.8, "B8IV"},
	{"rasalhague", "Rasalhague", 263.734, 12.560, 2.08, 48.6, 0.77, 2.4, "A5III"},
	{"kochab", "Kochab", 222.676, 74.156, 2.08, 130.9, 2.95, 2.2, "K4III"},
	{"algol", "Algol", 47.042, 40.957, 2.12, 90, 0.3, 3.17, "B8V"},
	{"denebola", "Denebola", 177.265, 14.572, 2.13, 35.9, 0.25, 1.78, "A3V"},
	{"schedar", "Schedar", 10.127, 56.537, 2.23, 228, 0.22, 4.5, "K0II"},
	{"eltanin", "Eltanin", 269.152, 51.489, 2.23, 154, 0.55, 1.72, "K5III"},
	{"alphecca", "Alphecca", 233.672, 26.715, 2.23, 75, 0.314, 2.58, "A0V"},
}

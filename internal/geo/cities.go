package geo

// cityEntry pairs a display name with its coordinates. The table is
// authored as an ordered slice and loaded into a map at init, so a
// duplicate name overwrites earlier coordinates instead of erroring.
type cityEntry struct {
	name string
	lat  float64
	lon  float64
}

var cityEntries = []cityEntry{
	{"Bogotá D.C.", 4.7110, -74.0721},
	{"Medellín", 6.2442, -75.5812},
	{"Cali", 3.4516, -76.5320},
	{"Barranquilla", 10.9685, -74.7813},
	{"Cartagena", 10.3910, -75.4794},
	{"Cúcuta", 7.8939, -72.5078},
	{"Bucaramanga", 7.1254, -73.1198},
	{"Pereira", 4.8133, -75.6961},
	{"Santa Marta", 11.2408, -74.1990},
	{"Ibagué", 4.4389, -75.2322},
	{"Pasto", 1.2136, -77.2811},
	{"Manizales", 5.0703, -75.5138},
	{"Neiva", 2.9273, -75.2819},
	{"Villavicencio", 4.1420, -73.6266},
	{"Armenia", 4.5339, -75.6811},
	{"Valledupar", 10.4631, -73.2532},
	{"Montería", 8.7479, -75.8814},
	{"Sincelejo", 9.3047, -75.3978},
	{"Popayán", 2.4448, -76.6147},
	{"Tunja", 5.5353, -73.3678},
	{"Riohacha", 11.5444, -72.9072},
	{"Quibdó", 5.6947, -76.6611},
	{"Florencia", 1.6144, -75.6062},
	{"Mocoa", 1.1470, -76.6481},
	{"Yopal", 5.3378, -72.3959},
	{"Arauca", 7.0844, -70.7591},
	{"San José del Guaviare", 2.5729, -72.6459},
	{"Mitú", 1.1983, -70.1733},
	{"Puerto Carreño", 6.1890, -67.4859},
	{"Inírida", 3.8653, -67.9239},
	{"Leticia", -4.2153, -69.9406},
	{"San Andrés", 12.5847, -81.7006},
	{"Soacha", 4.5793, -74.2168},
	{"Bello", 6.3373, -75.5579},
	{"Itagüí", 6.1719, -75.6114},
	{"Envigado", 6.1759, -75.5917},
	{"Rionegro", 6.1550, -75.3736},
	{"Soledad", 10.9184, -74.7646},
	{"Palmira", 3.5394, -76.3036},
	{"Buenaventura", 3.8801, -77.0312},
	{"Tuluá", 4.0847, -76.1954},
	{"Cartago", 4.7464, -75.9117},
	{"Girardot", 4.3036, -74.8036},
	{"Zipaquirá", 5.0221, -73.9990},
	{"Fusagasugá", 4.3371, -74.3643},
	{"Facatativá", 4.8117, -74.3545},
	{"Chía", 4.8616, -74.0325},
	{"Barrancabermeja", 7.0653, -73.8547},
	{"Floridablanca", 7.0622, -73.0865},
	{"Piedecuesta", 6.9870, -73.0498},
	{"Duitama", 5.8267, -73.0340},
	{"Sogamoso", 5.7147, -72.9339},
	{"Tumaco", 1.7986, -78.8156},
	{"Ipiales", 0.8303, -77.6444},
	{"Maicao", 11.3778, -72.2390},
	{"Ciénaga", 11.0069, -74.2444},
	{"Magangué", 9.2417, -74.7544},
	{"Lorica", 9.2369, -75.8136},
	{"Apartadó", 7.8828, -76.6259},
	{"Turbo", 8.0930, -76.7285},
	{"Dosquebradas", 4.8318, -75.6724},
}

// corruptionPatterns maps substrings that betray a specific upstream
// encoding failure (accented characters degraded to replacement markers
// or dropped outright) to the correct canonical name. Checked in order
// before any generic matching; heuristics alone cannot recover these.
type corruptionPattern struct {
	probe     string
	canonical string
}

var corruptionPatterns = []corruptionPattern{
	{"bogot", "Bogotá D.C."},
	{"medell", "Medellín"},
	{"ibagu", "Ibagué"},
	{"monter", "Montería"},
	{"ccuta", "Cúcuta"},
	{"cucuta", "Cúcuta"},
	{"quibd", "Quibdó"},
	{"popay", "Popayán"},
	{"itag", "Itagüí"},
	{"inrida", "Inírida"},
	{"cinaga", "Ciénaga"},
	{"magangu", "Magangué"},
	{"apartad", "Apartadó"},
	{"tulu", "Tuluá"},
	{"zipaquir", "Zipaquirá"},
	{"fusagasug", "Fusagasugá"},
	{"facatativ", "Facatativá"},
	{"san andrs", "San Andrés"},
	{"san jos del guaviare", "San José del Guaviare"},
	{"puerto carreo", "Puerto Carreño"},
}

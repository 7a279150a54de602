package reference

import (
	"sort"
	"strconv"
)

// Tier is the depth of an academic field in the taxonomy.
type Tier int

const (
	TierUnknown Tier = iota
	TierBroad
	TierNarrow
	TierDetailed
)

// Field is one entry of the ISCED-F 2013 taxonomy.
// Code is the ISCED code read as an integer ("0613" -> 613).
type Field struct {
	Code   int
	Label  string
	Tier   Tier
	Parent int
}

var fields = []Field{
	{Code: 0, Label: "Generic programmes and qualifications", Tier: TierBroad, Parent: -1},

	{Code: 1, Label: "Education", Tier: TierBroad, Parent: -1},
	{Code: 11, Label: "Education", Tier: TierNarrow, Parent: 1},
	{Code: 111, Label: "Education science", Tier: TierDetailed, Parent: 11},
	{Code: 112, Label: "Training for pre-school teachers", Tier: TierDetailed, Parent: 11},
	{Code: 113, Label: "Teacher training without subject specialisation", Tier: TierDetailed, Parent: 11},
	{Code: 114, Label: "Teacher training with subject specialisation", Tier: TierDetailed, Parent: 11},

	{Code: 2, Label: "Arts and humanities", Tier: TierBroad, Parent: -1},
	{Code: 21, Label: "Arts", Tier: TierNarrow, Parent: 2},
	{Code: 211, Label: "Audio-visual techniques and media production", Tier: TierDetailed, Parent: 21},
	{Code: 212, Label: "Fashion, interior and industrial design", Tier: TierDetailed, Parent: 21},
	{Code: 213, Label: "Fine arts", Tier: TierDetailed, Parent: 21},
	{Code: 214, Label: "Handicrafts", Tier: TierDetailed, Parent: 21},
	{Code: 215, Label: "Music and performing arts", Tier: TierDetailed, Parent: 21},
	{Code: 22, Label: "Humanities (except languages)", Tier: TierNarrow, Parent: 2},
	{Code: 221, Label: "Religion and theology", Tier: TierDetailed, Parent: 22},
	{Code: 222, Label: "History and archaeology", Tier: TierDetailed, Parent: 22},
	{Code: 223, Label: "Philosophy and ethics", Tier: TierDetailed, Parent: 22},
	{Code: 23, Label: "Languages", Tier: TierNarrow, Parent: 2},
	{Code: 231, Label: "Language acquisition", Tier: TierDetailed, Parent: 23},
	{Code: 232, Label: "Literature and linguistics", Tier: TierDetailed, Parent: 23},

	{Code: 3, Label: "Social sciences, journalism and information", Tier: TierBroad, Parent: -1},
	{Code: 31, Label: "Social and behavioural sciences", Tier: TierNarrow, Parent: 3},
	{Code: 311, Label: "Economics", Tier: TierDetailed, Parent: 31},
	{Code: 312, Label: "Political sciences and civics", Tier: TierDetailed, Parent: 31},
	{Code: 313, Label: "Psychology", Tier: TierDetailed, Parent: 31},
	{Code: 314, Label: "Sociology and cultural studies", Tier: TierDetailed, Parent: 31},
	{Code: 32, Label: "Journalism and information", Tier: TierNarrow, Parent: 3},
	{Code: 321, Label: "Journalism and reporting", Tier: TierDetailed, Parent: 32},
	{Code: 322, Label: "Library, information and archival studies", Tier: TierDetailed, Parent: 32},

	{Code: 4, Label: "Business, administration and law", Tier: TierBroad, Parent: -1},
	{Code: 41, Label: "Business and administration", Tier: TierNarrow, Parent: 4},
	{Code: 411, Label: "Accounting and taxation", Tier: TierDetailed, Parent: 41},
	{Code: 412, Label: "Finance, banking and insurance", Tier: TierDetailed, Parent: 41},
	{Code: 413, Label: "Management and administration", Tier: TierDetailed, Parent: 41},
	{Code: 414, Label: "Marketing and advertising", Tier: TierDetailed, Parent: 41},
	{Code: 415, Label: "Secretarial and office work", Tier: TierDetailed, Parent: 41},
	{Code: 416, Label: "Wholesale and retail sales", Tier: TierDetailed, Parent: 41},
	{Code: 417, Label: "Work skills", Tier: TierDetailed, Parent: 41},
	{Code: 42, Label: "Law", Tier: TierNarrow, Parent: 4},
	{Code: 421, Label: "Law", Tier: TierDetailed, Parent: 42},

	{Code: 5, Label: "Natural sciences, mathematics and statistics", Tier: TierBroad, Parent: -1},
	{Code: 51, Label: "Biological and related sciences", Tier: TierNarrow, Parent: 5},
	{Code: 511, Label: "Biology", Tier: TierDetailed, Parent: 51},
	{Code: 512, Label: "Biochemistry", Tier: TierDetailed, Parent: 51},
	{Code: 52, Label: "Environment", Tier: TierNarrow, Parent: 5},
	{Code: 521, Label: "Environmental sciences", Tier: TierDetailed, Parent: 52},
	{Code: 522, Label: "Natural environments and wildlife", Tier: TierDetailed, Parent: 52},
	{Code: 53, Label: "Physical sciences", Tier: TierNarrow, Parent: 5},
	{Code: 531, Label: "Chemistry", Tier: TierDetailed, Parent: 53},
	{Code: 532, Label: "Earth sciences", Tier: TierDetailed, Parent: 53},
	{Code: 533, Label: "Physics", Tier: TierDetailed, Parent: 53},
	{Code: 54, Label: "Mathematics and statistics", Tier: TierNarrow, Parent: 5},
	{Code: 541, Label: "Mathematics", Tier: TierDetailed, Parent: 54},
	{Code: 542, Label: "Statistics", Tier: TierDetailed, Parent: 54},

	{Code: 6, Label: "Information and Communication Technologies (ICTs)", Tier: TierBroad, Parent: -1},
	{Code: 61, Label: "Information and Communication Technologies (ICTs)", Tier: TierNarrow, Parent: 6},
	{Code: 611, Label: "Computer use", Tier: TierDetailed, Parent: 61},
	{Code: 612, Label: "Database and network design and administration", Tier: TierDetailed, Parent: 61},
	{Code: 613, Label: "Software and applications development and analysis", Tier: TierDetailed, Parent: 61},

	{Code: 7, Label: "Engineering, manufacturing and construction", Tier: TierBroad, Parent: -1},
	{Code: 71, Label: "Engineering and engineering trades", Tier: TierNarrow, Parent: 7},
	{Code: 711, Label: "Chemical engineering and processes", Tier: TierDetailed, Parent: 71},
	{Code: 712, Label: "Environmental protection technology", Tier: TierDetailed, Parent: 71},
	{Code: 713, Label: "Electricity and energy", Tier: TierDetailed, Parent: 71},
	{Code: 714, Label: "Electronics and automation", Tier: TierDetailed, Parent: 71},
	{Code: 715, Label: "Mechanics and metal trades", Tier: TierDetailed, Parent: 71},
	{Code: 716, Label: "Motor vehicles, ships and aircraft", Tier: TierDetailed, Parent: 71},
	{Code: 72, Label: "Manufacturing and processing", Tier: TierNarrow, Parent: 7},
	{Code: 721, Label: "Food processing", Tier: TierDetailed, Parent: 72},
	{Code: 722, Label: "Materials (glass, paper, plastic and wood)", Tier: TierDetailed, Parent: 72},
	{Code: 723, Label: "Textiles (clothes, footwear and leather)", Tier: TierDetailed, Parent: 72},
	{Code: 724, Label: "Mining and extraction", Tier: TierDetailed, Parent: 72},
	{Code: 73, Label: "Architecture and construction", Tier: TierNarrow, Parent: 7},
	{Code: 731, Label: "Architecture and town planning", Tier: TierDetailed, Parent: 73},
	{Code: 732, Label: "Building and civil engineering", Tier: TierDetailed, Parent: 73},

	{Code: 8, Label: "Agriculture, forestry, fisheries and veterinary", Tier: TierBroad, Parent: -1},
	{Code: 81, Label: "Agriculture", Tier: TierNarrow, Parent: 8},
	{Code: 811, Label: "Crop and livestock production", Tier: TierDetailed, Parent: 81},
	{Code: 812, Label: "Horticulture", Tier: TierDetailed, Parent: 81},
	{Code: 82, Label: "Forestry", Tier: TierNarrow, Parent: 8},
	{Code: 821, Label: "Forestry", Tier: TierDetailed, Parent: 82},
	{Code: 83, Label: "Fisheries", Tier: TierNarrow, Parent: 8},
	{Code: 831, Label: "Fisheries", Tier: TierDetailed, Parent: 83},
	{Code: 84, Label: "Veterinary", Tier: TierNarrow, Parent: 8},
	{Code: 841, Label: "Veterinary", Tier: TierDetailed, Parent: 84},

	{Code: 9, Label: "Health and welfare", Tier: TierBroad, Parent: -1},
	{Code: 91, Label: "Health", Tier: TierNarrow, Parent: 9},
	{Code: 911, Label: "Dental studies", Tier: TierDetailed, Parent: 91},
	{Code: 912, Label: "Medicine", Tier: TierDetailed, Parent: 91},
	{Code: 913, Label: "Nursing and midwifery", Tier: TierDetailed, Parent: 91},
	{Code: 914, Label: "Medical diagnostic and treatment technology", Tier: TierDetailed, Parent: 91},
	{Code: 915, Label: "Therapy and rehabilitation", Tier: TierDetailed, Parent: 91},
	{Code: 916, Label: "Pharmacy", Tier: TierDetailed, Parent: 91},
	{Code: 917, Label: "Traditional and complementary medicine and therapy", Tier: TierDetailed, Parent: 91},
	{Code: 92, Label: "Welfare", Tier: TierNarrow, Parent: 9},
	{Code: 921, Label: "Care of the elderly and of disabled adults", Tier: TierDetailed, Parent: 92},
	{Code: 922, Label: "Child care and youth services", Tier: TierDetailed, Parent: 92},
	{Code: 923, Label: "Social work and counselling", Tier: TierDetailed, Parent: 92},

	{Code: 10, Label: "Services", Tier: TierBroad, Parent: -1},
	{Code: 101, Label: "Personal services", Tier: TierNarrow, Parent: 10},
	{Code: 1011, Label: "Domestic services", Tier: TierDetailed, Parent: 101},
	{Code: 1012, Label: "Hair and beauty services", Tier: TierDetailed, Parent: 101},
	{Code: 1013, Label: "Hotel, restaurants and catering", Tier: TierDetailed, Parent: 101},
	{Code: 1014, Label: "Sports", Tier: TierDetailed, Parent: 101},
	{Code: 1015, Label: "Travel, tourism and leisure", Tier: TierDetailed, Parent: 101},
	{Code: 102, Label: "Hygiene and occupational health services", Tier: TierNarrow, Parent: 10},
	{Code: 1021, Label: "Community sanitation", Tier: TierDetailed, Parent: 102},
	{Code: 1022, Label: "Occupational health and safety", Tier: TierDetailed, Parent: 102},
	{Code: 103, Label: "Security services", Tier: TierNarrow, Parent: 10},
	{Code: 1031, Label: "Military and defence", Tier: TierDetailed, Parent: 103},
	{Code: 1032, Label: "Protection of persons and property", Tier: TierDetailed, Parent: 103},
	{Code: 104, Label: "Transport services", Tier: TierNarrow, Parent: 10},
	{Code: 1041, Label: "Transport services", Tier: TierDetailed, Parent: 104},

	{Code: 99, Label: "Field unknown", Tier: TierBroad, Parent: -1},
}

var fieldIndex = func() map[int]Field {
	idx := make(map[int]Field, len(fields))
	for _, f := range fields {
		idx[f.Code] = f
	}
	return idx
}()

// LookupField returns the taxonomy entry for code.
func LookupField(code int) (Field, bool) {
	f, ok := fieldIndex[code]
	return f, ok
}

// FieldLabel renders an academic field code.
func FieldLabel(code int) string {
	if f, ok := fieldIndex[code]; ok {
		return f.Label
	}
	return fallbackLabel(code)
}

// FieldTier returns the depth of code, TierUnknown when the code is not in the table.
func FieldTier(code int) Tier {
	return fieldIndex[code].Tier
}

// FieldParent returns the enclosing field of code. Broad and unknown codes have none.
func FieldParent(code int) (int, bool) {
	f, ok := fieldIndex[code]
	if !ok || f.Parent < 0 {
		return 0, false
	}
	return f.Parent, true
}

// FieldChildren returns the direct descendants of code in table order.
func FieldChildren(code int) []Field {
	var out []Field
	for _, f := range fields {
		if f.Parent == code {
			out = append(out, f)
		}
	}
	return out
}

// FieldPath returns the labels from the broad field down to code.
func FieldPath(code int) []string {
	if _, ok := fieldIndex[code]; !ok {
		return []string{fallbackLabel(code)}
	}
	var path []string
	for current, ok := code, true; ok; current, ok = FieldParent(current) {
		path = append([]string{fieldIndex[current].Label}, path...)
	}
	return path
}

// Fields returns every field as a selectable option, ordered by code.
func Fields() []Option {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	out := make([]Option, 0, len(sorted))
	for _, f := range sorted {
		out = append(out, Option{Value: strconv.Itoa(f.Code), Label: f.Label})
	}
	return out
}

package techspec

const (
	// NA marks a field which is not applicable.
	NA = "NA"
	// Yes marks a set flag.
	Yes = "Yes"
)

// Columns are table headers in the order of Row.Cells.
var Columns = []string{
	"Screen Element",
	"Label ID",
	"CTA",
	"Content-Biz Managed",
	"DataType(input)",
	"Display If",
	"Country",
	"Channel",
	"API(For API's refer API sheet)",
}

// Row is a single line of the specification table. Empty string means empty
// cell.
type Row struct {
	ScreenElement     string `yaml:"screen_element"`
	LabelID           string `yaml:"label_id"`
	CTA               string `yaml:"cta"`
	ContentBizManaged string `yaml:"content_biz_managed"`
	DataTypeInput     string `yaml:"data_type_input"`
	DisplayIf         string `yaml:"display_if,omitempty"`
	Country           string `yaml:"country,omitempty"`
	Channel           string `yaml:"channel,omitempty"`
	API               string `yaml:"api,omitempty"`
}

// Cells returns row values in Columns order.
func (r Row) Cells() []string {
	return []string{
		r.ScreenElement,
		r.LabelID,
		r.CTA,
		r.ContentBizManaged,
		r.DataTypeInput,
		r.DisplayIf,
		r.Country,
		r.Channel,
		r.API,
	}
}

// RowFromCells is the reverse of Cells, missing trailing cells are empty.
func RowFromCells(cells []string) Row {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return Row{
		ScreenElement:     get(0),
		LabelID:           get(1),
		CTA:               get(2),
		ContentBizManaged: get(3),
		DataTypeInput:     get(4),
		DisplayIf:         get(5),
		Country:           get(6),
		Channel:           get(7),
		API:               get(8),
	}
}

// ModuleHeader is the key/description block written above the table.
type ModuleHeader struct {
	Module    string
	SubModule string
	PageName  string
}

// Pairs returns header lines as key, description.
func (h ModuleHeader) Pairs() [][2]string {
	return [][2]string{
		{"MODULE", h.Module},
		{"SUB MODULE", h.SubModule},
		{"PAGENAME", h.PageName},
	}
}

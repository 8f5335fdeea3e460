package fuzzy

import (
	"encoding/xml"
	"strings"
)

// xmlItem is the legacy launcher XML representation of a suggestion.
type xmlItem struct {
	XMLName      xml.Name `xml:"item"`
	UID          string   `xml:"uid,attr,omitempty"`
	Arg          string   `xml:"arg,omitempty"`
	Title        string   `xml:"title"`
	Subtitle     string   `xml:"subtitle,omitempty"`
	Icon         string   `xml:"icon,omitempty"`
	Valid        bool     `xml:"valid,attr"`
	AutoComplete string   `xml:"autocomplete,attr,omitempty"`
}

// ToXML renders items in the legacy launcher XML list format, for consumers
// that predate the JSON script-filter form.
func ToXML(items Items) (string, error) {
	var b strings.Builder
	b.WriteString("<items>")

	for _, item := range items {
		data, err := xml.Marshal(xmlItem{
			UID:          item.UID,
			Arg:          item.Arg,
			Title:        item.Title,
			Subtitle:     item.Subtitle,
			Icon:         item.Icon,
			Valid:        item.Arg != "",
			AutoComplete: item.Autocomplete,
		})
		if err != nil {
			return "", err
		}
		b.Write(data)
	}

	b.WriteString("</items>")
	return b.String(), nil
}

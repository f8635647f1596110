package facet

import (
	"github.com/goccy/go-json"

	"github.com/arloliu/geocluster/cluster"
	"github.com/arloliu/geocluster/geo"
)

// facetType is the "_type" value of a rendered geohash facet.
const facetType = "geohash"

// LatLon is a JSON point.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func latLon(p geo.Point) LatLon {
	return LatLon{Lat: p.Lat, Lon: p.Lon}
}

// Cell is the rectangle of a geohash cell.
type Cell struct {
	TopLeft     LatLon `json:"top_left"`
	BottomRight LatLon `json:"bottom_right"`
}

// Entry is one rendered cluster.
//
// Bounds are present only for clusters with more than one point. DocType and
// DocID are present only for singletons with an identity when the facet asks
// for them.
type Entry struct {
	Total       int     `json:"total"`
	Center      LatLon  `json:"center"`
	TopLeft     *LatLon `json:"top_left,omitempty"`
	BottomRight *LatLon `json:"bottom_right,omitempty"`
	GeohashCell *Cell   `json:"geohash_cell,omitempty"`
	DocType     string  `json:"doc_type,omitempty"`
	DocID       string  `json:"doc_id,omitempty"`
}

// Response is a rendered facet result.
type Response struct {
	Name     string  `json:"-"`
	Type     string  `json:"_type"`
	Clusters []Entry `json:"clusters"`
}

// Render converts clusters into the facet's response, in the given order.
func Render(cfg Config, clusters []*cluster.Cluster) Response {
	entries := make([]Entry, 0, len(clusters))
	for _, c := range clusters {
		entries = append(entries, renderEntry(cfg, c))
	}

	return Response{
		Name:     cfg.Name,
		Type:     facetType,
		Clusters: entries,
	}
}

func renderEntry(cfg Config, c *cluster.Cluster) Entry {
	e := Entry{
		Total:  c.Size(),
		Center: latLon(c.Center()),
	}

	if c.Size() > 1 {
		tl, br := latLon(c.Bounds().TopLeft()), latLon(c.Bounds().BottomRight())
		e.TopLeft, e.BottomRight = &tl, &br
	}

	if cfg.ShowGeohashCell {
		cell := c.Cell()
		e.GeohashCell = &Cell{
			TopLeft:     latLon(cell.TopLeft()),
			BottomRight: latLon(cell.BottomRight()),
		}
	}

	if cfg.ShowDocID && c.Identity() != nil {
		e.DocType = c.Identity().Type
		e.DocID = c.Identity().ID
	}

	return e
}

// MarshalIndent renders the response keyed by facet name, as in a search response:
//
//	{"<name>":{"_type":"geohash","clusters":[...]}}
func (r Response) MarshalIndent(prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(map[string]Response{r.Name: r}, prefix, indent)
}

// Marshal is MarshalIndent without indentation.
func (r Response) Marshal() ([]byte, error) {
	return json.Marshal(map[string]Response{r.Name: r})
}

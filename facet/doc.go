// Package facet describes a geohash clustering facet and renders its results.
//
// A facet names the document field to cluster on, the precision factor, the
// centering algorithm and which optional details to include in the response.
// Configurations are loaded from YAML and can be rendered back into a search
// request fragment.
//
//	cfg, err := facet.LoadConfig("facet.yaml")
//	if err != nil {
//	    return err
//	}
//	b, _ := cfg.NewBuilder()
//	...
//	resp := facet.Render(cfg, b.Build())
//	out, _ := resp.MarshalIndent("", "  ")
package facet

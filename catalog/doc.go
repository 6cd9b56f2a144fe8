// Package catalog loads named sets of templates from YAML or TOML files.
//
// A catalog file maps names to patterns. Named patterns use "{ key }"
// placeholders, positional ones use "{N}":
//
//	templates:
//	  product_url:
//	    pattern: "https://api.com/{ user_id }/products/{ product_id }"
//	    description: Product page for a user
//	  search_url:
//	    pattern: "https://api.com/search?q={1}&page={2}"
//	    positional: true
//
// The same catalog in TOML:
//
//	[templates.product_url]
//	pattern = "https://api.com/{ user_id }/products/{ product_id }"
//
//	[templates.search_url]
//	pattern = "https://api.com/search?q={1}&page={2}"
//	positional = true
//
// Load picks the format from the file extension:
//
//	c, err := catalog.Load("templates.yaml")
//	url, err := c.Render("product_url", map[string]string{"user_id": "85", "product_id": "23"})
//
// Schema returns the JSON Schema of the file layout.
//
// # Reloading
//
// Watcher reloads the file whenever it changes and keeps serving the last
// good catalog when a reload fails:
//
//	w, err := catalog.NewWatcher("templates.yaml")
//	go w.Run(ctx)
//	c := w.Catalog()
package catalog

package hclcatalog

import "github.com/hashicorp/hcl/v2"

// unitBlock is the HCL shape of a `unit` block in a catalog overlay.
type unitBlock struct {
	Name     string         `hcl:"name,label"`
	Category string         `hcl:"category"`
	Factor   hcl.Expression `hcl:"factor"`
}

// substanceBlock is the HCL shape of a `substance` block.
type substanceBlock struct {
	Name    string         `hcl:"name,label"`
	Density hcl.Expression `hcl:"density"`
}

// catalogFile is the top-level structure of one overlay file.
type catalogFile struct {
	Units      []*unitBlock      `hcl:"unit,block"`
	Substances []*substanceBlock `hcl:"substance,block"`
}

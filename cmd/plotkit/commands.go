package main

import (
	"github.com/YuminosukeSato/plotkit/pairwise"
	"github.com/YuminosukeSato/plotkit/plotting"
)

// SimilarityCmd draws the similarity matrix of groups of items. Items are
// compared by their text form.
type SimilarityCmd struct {
	RenderFlags

	Method string `default:"jaccard" help:"Similarity method."`
}

func (c *SimilarityCmd) Run(g *Globals) error {
	if err := g.setup(); err != nil {
		return err
	}
	preset, err := pairwise.ParsePreset(c.Method)
	if err != nil {
		return err
	}
	in, err := loadInput[string](c.Input)
	if err != nil {
		return err
	}

	method := pairwise.SimilarityPreset[string](preset)
	return c.draw("similarity", func(ax *plotting.Axes, opts []plotting.HeatmapOption) (*plotting.Heatmap, error) {
		return plotting.SimilarityHeatmap(ax, in.Groups, method, opts...)
	}, in.Labels)
}

// CorrelationCmd draws the correlation matrix of numeric series.
type CorrelationCmd struct {
	RenderFlags

	Method string `default:"pearson" help:"Correlation method: pearson, spearman or kendall."`
}

func (c *CorrelationCmd) Run(g *Globals) error {
	if err := g.setup(); err != nil {
		return err
	}
	preset, err := pairwise.ParsePreset(c.Method)
	if err != nil {
		return err
	}
	in, err := loadInput[float64](c.Input)
	if err != nil {
		return err
	}

	method := pairwise.CorrelationPreset(preset)
	return c.draw("correlation", func(ax *plotting.Axes, opts []plotting.HeatmapOption) (*plotting.Heatmap, error) {
		return plotting.CorrelationHeatmap(ax, in.Groups, method, opts...)
	}, in.Labels)
}

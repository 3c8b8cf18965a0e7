// Package stats joins clique members with their target attributes and
// derives per-clique aggregates: the viewership distribution drawn by
// package render and a compact summary stored with each run.
package stats

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
	"github.com/katalvlaran/lvclique/ingest"
)

// ErrUnknownNode is returned by Join for a clique member without a target row.
var ErrUnknownNode = errors.New("stats: node missing from target table")

// Share is one member's fraction of its clique's total views.
type Share struct {
	ID       core.VertexID `json:"id"`
	Fraction float64       `json:"fraction"`
}

// Distribution is the viewership split of one clique, in member order.
type Distribution struct {
	Shares []Share `json:"shares"`
}

// Summary condenses one clique.
type Summary struct {
	Size       int           `json:"size"`
	TotalViews uint64        `json:"total_views"`
	Mature     int           `json:"mature"`
	Partner    int           `json:"partner"`
	Top        core.VertexID `json:"top"`
	TopShare   float64       `json:"top_share"`
}

// Join replaces every clique member with its NodeStats, preserving clique
// and member order. The first member without a target row aborts with
// ErrUnknownNode.
func Join(cliques []clique.Clique, targets map[core.VertexID]ingest.NodeStats) ([][]ingest.NodeStats, error) {
	out := make([][]ingest.NodeStats, 0, len(cliques))
	for i, c := range cliques {
		row := make([]ingest.NodeStats, 0, len(c))
		for _, id := range c {
			ns, ok := targets[id]
			if !ok {
				return nil, fmt.Errorf("%w: vertex %d of clique %d", ErrUnknownNode, id, i+1)
			}
			row = append(row, ns)
		}
		out = append(out, row)
	}

	return out, nil
}

// ViewershipDistribution computes, per clique, each member's views divided
// by the clique's total. A clique whose members have no views at all gets
// fraction 0 for everyone instead of NaN.
func ViewershipDistribution(nodeCliques [][]ingest.NodeStats) []Distribution {
	out := make([]Distribution, 0, len(nodeCliques))
	for _, members := range nodeCliques {
		total := totalViews(members)
		d := Distribution{Shares: make([]Share, 0, len(members))}
		for _, ns := range members {
			d.Shares = append(d.Shares, Share{ID: ns.ID, Fraction: fraction(ns.Views, total)})
		}
		out = append(out, d)
	}

	return out
}

// Summarize reports size, view total, flag counts and the most viewed member
// (ties to the smallest ID) for each clique.
func Summarize(nodeCliques [][]ingest.NodeStats) []Summary {
	out := make([]Summary, 0, len(nodeCliques))
	for _, members := range nodeCliques {
		s := Summary{Size: len(members), TotalViews: totalViews(members)}
		var best *ingest.NodeStats
		for i := range members {
			ns := &members[i]
			if ns.Mature {
				s.Mature++
			}
			if ns.Partner {
				s.Partner++
			}
			if best == nil || ns.Views > best.Views || (ns.Views == best.Views && ns.ID < best.ID) {
				best = ns
			}
		}
		if best != nil {
			s.Top = best.ID
			s.TopShare = fraction(best.Views, s.TotalViews)
		}
		out = append(out, s)
	}

	return out
}

func totalViews(members []ingest.NodeStats) uint64 {
	var sum uint64
	for _, ns := range members {
		sum += uint64(ns.Views)
	}

	return sum
}

func fraction(views uint32, total uint64) float64 {
	if total == 0 {
		return 0
	}

	return float64(views) / float64(total)
}

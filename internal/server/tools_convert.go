package server

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/droidcast/droidcast/internal/dlog"
	"github.com/droidcast/droidcast/internal/vd"
	"github.com/droidcast/droidcast/internal/vdcache"
)

// VectorToSVGInput is the request for the vector_to_svg tool.
type VectorToSVGInput struct {
	XML            string `json:"xml" jsonschema:"VectorDrawable XML to convert"`
	Precision      int    `json:"precision,omitempty" jsonschema:"fractional digits for numeric output (default 2)"`
	ForceBlackFill bool   `json:"force_black_fill,omitempty" jsonschema:"replace all fill colors with black"`
	XMLDeclaration bool   `json:"xml_declaration,omitempty" jsonschema:"prepend the XML declaration to the SVG"`
	Tint           string `json:"tint,omitempty" jsonschema:"override all fill colors with this color"`
	NoCache        bool   `json:"no_cache,omitempty" jsonschema:"bypass the conversion cache and recompute"`
	OutputPath     string `json:"output_path,omitempty" jsonschema:"optional file path to also write the SVG to"`
}

func (s *Server) handleVectorToSVG(ctx context.Context, req *mcp.CallToolRequest, in VectorToSVGInput) (*mcp.CallToolResult, any, error) {
	if in.XML == "" {
		return nil, nil, fmt.Errorf("xml is required")
	}

	opts := vd.Options{
		Precision:      in.Precision,
		ForceBlackFill: in.ForceBlackFill,
		XMLDeclaration: in.XMLDeclaration,
		Tint:           in.Tint,
	}

	svg, cached, err := s.convert(in.XML, opts, in.NoCache)
	if err != nil {
		return nil, nil, err
	}

	if cached {
		notify(ctx, req, "vector_to_svg: cache hit")
	} else {
		notify(ctx, req, "vector_to_svg: converted")
	}

	if in.OutputPath != "" {
		// Best-effort side write; a failure is logged but the SVG is
		// still returned as the primary result.
		if werr := os.WriteFile(in.OutputPath, []byte(svg), 0644); werr != nil {
			dlog.Warn("vector_to_svg: write %s: %v", in.OutputPath, werr)
			notify(ctx, req, fmt.Sprintf("failed to write %s: %v", in.OutputPath, werr))
		}
	}

	return textResult(svg), nil, nil
}

// convert runs the conversion through the cache unless bypass is set.
// Bypassing yields byte-identical output, just recomputed.
func (s *Server) convert(input string, opts vd.Options, bypass bool) (svg string, cached bool, err error) {
	if bypass {
		svg, err = vd.Convert(input, opts)
		return svg, false, err
	}

	key := vdcache.Key(input, opts)
	if hit, ok := s.cache.Get(key); ok {
		return hit, true, nil
	}

	svg, err = vd.Convert(input, opts)
	if err != nil {
		return "", false, err
	}
	s.cache.Put(key, svg)
	return svg, false, nil
}

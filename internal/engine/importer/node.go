package importer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/index"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/rdf"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/core/ports"
)

const (
	// PipelineNodeID is the unique identifier for the import pipeline Graft node.
	PipelineNodeID graft.ID = "engine.importer.pipeline"
	// BulkNodeID is the unique identifier for the bulk importer Graft node.
	BulkNodeID graft.ID = "engine.importer.bulk"
)

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        PipelineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			rdf.NodeID,
			cas.NodeID,
			index.NodeID,
			fs.HasherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: runPipelineNode,
	})

	graft.Register(graft.Node[*BulkImporter]{
		ID:        BulkNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{PipelineNodeID, telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*BulkImporter, error) {
			pipeline, err := graft.Dep[*Pipeline](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBulkImporter(pipeline, tracer, log), nil
		},
	})
}

func runPipelineNode(ctx context.Context) (*Pipeline, error) {
	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}
	parser, err := graft.Dep[ports.Parser](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[ports.GraphCache](ctx)
	if err != nil {
		return nil, err
	}
	idx, err := graft.Dep[ports.SourceIndex](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}
	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	return NewPipeline(fetcher, parser, cache, idx, hasher, tracer, log, m), nil
}

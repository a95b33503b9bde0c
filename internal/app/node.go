package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/adapters/index"    //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/adapters/lov"      //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/adapters/metrics"  //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/adapters/rdf"      //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/onto/internal/engine/catalog"
	"go.trai.ch/onto/internal/engine/importer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.RepositoryNodeID,
			importer.PipelineNodeID,
			importer.BulkNodeID,
			catalog.NodeID,
			cas.NodeID,
			index.NodeID,
			rdf.NodeID,
			detector.NodeID,
			lov.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			index.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			idx, err := graft.Dep[ports.SourceIndex](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log, idx), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	repo, err := graft.Dep[ports.Repository](ctx)
	if err != nil {
		return nil, err
	}
	pipeline, err := graft.Dep[*importer.Pipeline](ctx)
	if err != nil {
		return nil, err
	}
	bulk, err := graft.Dep[*importer.BulkImporter](ctx)
	if err != nil {
		return nil, err
	}
	cat, err := graft.Dep[*catalog.Catalog](ctx)
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
	parser, err := graft.Dep[ports.Parser](ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}
	directory, err := graft.Dep[ports.VocabularyDirectory](ctx)
	if err != nil {
		return nil, err
	}
	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(repo, pipeline, bulk, cat, cache, idx, parser, renderer, directory, m, log), nil
}

package runstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

const DefaultRunsIndex = "generation-runs"

// ElasticIndexer indexes every completed run, keyed by run id.
// It is a tracker observer, not a store.
type ElasticIndexer struct {
	es    *elasticsearch.Client
	index string
}

func NewElasticIndexer(es *elasticsearch.Client, index string) *ElasticIndexer {
	if index == "" {
		index = DefaultRunsIndex
	}
	return &ElasticIndexer{es: es, index: index}
}

type runDocument struct {
	models.GenerationRun
	Cost      float64 `json:"cost"`
	PageCount int     `json:"pageCount"`
}

func (x *ElasticIndexer) RunCompleted(ctx context.Context, run models.GenerationRun) error {
	doc := runDocument{GenerationRun: run, Cost: run.Cost()}
	if run.Result != nil {
		doc.PageCount = run.Result.PageCount
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.NewStoreError("index", err)
	}

	res, err := x.es.Index(
		x.index,
		bytes.NewReader(body),
		x.es.Index.WithContext(ctx),
		x.es.Index.WithDocumentID(run.ID),
	)
	if err != nil {
		return errors.NewStoreError("index", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return errors.NewStoreError("index", fmt.Errorf("%s: %s", res.Status(), bytes.TrimSpace(msg)))
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"alfredoptarigan/resume-matcher/internal/models"
)

// JobIndexService is the vector index over job-description chunks. It backs
// the best-effort "similar jobs" list attached to each analysis; the matching
// engine itself never touches it.
type JobIndexService interface {
	InitCollection() error
	UpsertJobChunk(ctx context.Context, jobTitle string, text string, embedding []float32) error
	SearchJobs(ctx context.Context, queryEmbedding []float32, limit int) ([]models.SimilarJob, error)
	DeleteJob(ctx context.Context, jobTitle string) error
}

type jobIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewJobIndexService(urlStr, apiKey, collectionName string) (JobIndexService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &jobIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements JobIndexService.
func (q *jobIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Job index collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertJobChunk implements JobIndexService.
func (q *jobIndexService) UpsertJobChunk(ctx context.Context, jobTitle string, text string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"job_title": jobTitle,
			"text":      text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchJobs implements JobIndexService. Results are deduplicated by title,
// keeping each title's best-scoring chunk, so one long description cannot
// fill the whole list.
func (q *jobIndexService) SearchJobs(ctx context.Context, queryEmbedding []float32, limit int) ([]models.SimilarJob, error) {
	// Over-fetch because several chunks of one job may rank ahead of the
	// first chunk of another.
	fetchLimit := uint64(limit * 4)

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(fetchLimit),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	seen := make(map[string]struct{})
	var results []models.SimilarJob

	for _, point := range searchResult {
		title := ""
		if raw, ok := point.Payload["job_title"]; ok {
			if val, ok := raw.GetKind().(*qdrant.Value_StringValue); ok {
				title = val.StringValue
			}
		}
		if title == "" {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}

		results = append(results, models.SimilarJob{
			Title: title,
			Score: point.Score,
		})
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

// DeleteJob implements JobIndexService.
func (q *jobIndexService) DeleteJob(ctx context.Context, jobTitle string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("job_title", jobTitle),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}

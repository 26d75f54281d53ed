package main

import (
	"context"
	"log"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/services"
)

// Ingests every job description from the catalog into the Qdrant job index.
// Run once after editing data/job_descriptions.json.
func main() {
	log.Println("🚀 Starting job catalog ingestion...")

	cfg := config.Load()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	jobIndex, err := services.NewJobIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := jobIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	catalog := services.NewJobCatalogService(cfg.Catalog.Path)
	jobs := catalog.Load()
	if len(jobs) == 0 {
		log.Fatalf("❌ Job catalog at %s is empty or unavailable", cfg.Catalog.Path)
	}

	chunker := services.NewTextChunker()
	ctx := context.Background()

	ingested := 0
	for title, job := range jobs {
		// Fresh upsert for each job so re-ingestion does not duplicate chunks
		if err := jobIndex.DeleteJob(ctx, title); err != nil {
			log.Printf("⚠️  Failed to clear existing chunks for %q: %v\n", title, err)
		}

		chunks := chunker.ChunkText(job.Description, 1000, 100)
		if len(chunks) == 0 {
			log.Printf("⚠️  Job %q has an empty description, skipping\n", title)
			continue
		}

		for _, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Fatalf("❌ Failed to embed chunk of %q: %v", title, err)
			}

			if err := jobIndex.UpsertJobChunk(ctx, title, chunk, embedding); err != nil {
				log.Fatalf("❌ Failed to upsert chunk of %q: %v", title, err)
			}
		}

		log.Printf("✅ Ingested %q (%d chunks)\n", title, len(chunks))
		ingested++
	}

	log.Printf("🎉 Done. %d of %d jobs ingested.\n", ingested, len(jobs))
}

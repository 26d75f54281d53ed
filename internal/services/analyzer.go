package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	analysisRepo   repositories.AnalysisRepository
	docRepo        repositories.DocumentRepository
	storageService StorageService
	extractor      TextExtractorService
	skillExtractor SkillExtractorService
	matcher        MatcherService
	embedder       Embedder
	jobIndex       JobIndexService
	similarJobs    int
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	storageService StorageService,
	extractor TextExtractorService,
	skillExtractor SkillExtractorService,
	matcher MatcherService,
	embedder Embedder,
	jobIndex JobIndexService,
) AnalyzerService {
	return &analyzerService{
		analysisRepo:   analysisRepo,
		docRepo:        docRepo,
		storageService: storageService,
		extractor:      extractor,
		skillExtractor: skillExtractor,
		matcher:        matcher,
		embedder:       embedder,
		jobIndex:       jobIndex,
		similarJobs:    3,
	}
}

// AnalyzeResume runs the full pipeline for one queued analysis: extract →
// normalize → skills/contacts → match → similar-job lookup → persist. Every
// failure is terminal for the request and recorded on the analysis row; the
// uploaded file is removed once the outcome is known.
func (a *analyzerService) AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	doc, err := a.docRepo.FindByID(analysis.ResumeDocumentID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	// The uploaded file only lives for the duration of this analysis.
	defer func() {
		if err := a.storageService.DeleteFile(doc.Filename); err != nil {
			log.Printf("⚠️  Failed to remove uploaded file %s: %v\n", doc.Filename, err)
		}
	}()

	data, err := a.storageService.ReadFile(doc.Filename)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Failed to read resume file: %v", err))
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	// Step 1: Extract text
	log.Println("📄 Extracting resume text...")
	rawText, err := a.extractor.ExtractText(data, doc.Extension)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	// Step 2: Normalize and extract skills/contacts
	cleanedText := NormalizeText(rawText)

	log.Println("🔍 Extracting skills...")
	resume := &models.ResumeRecord{
		RawText:     rawText,
		CleanedText: cleanedText,
		Skills:      a.skillExtractor.ExtractSkills(ctx, cleanedText),
		Email:       a.skillExtractor.ExtractEmail(rawText),
		Phone:       a.skillExtractor.ExtractPhone(rawText),
	}

	// Step 3: Match against the requested job
	log.Printf("🤖 Matching against %q...\n", analysis.JobTitle)
	result, err := a.matcher.Match(ctx, resume, analysis.JobTitle)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to match resume: %w", err)
	}

	result.Email = resume.Email
	result.Phone = resume.Phone

	// Step 4: Similar jobs from the vector index, best effort
	result.SimilarJobs = a.findSimilarJobs(ctx, resume.CleanedText, analysis.JobTitle)

	// Step 5: Save results
	log.Println("💾 Saving analysis result...")
	resultJSON, err := json.Marshal(result)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Failed to serialize result: %v", err))
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	updateData := &repositories.AnalysisUpdateData{
		OverallMatch:  &result.OverallMatch,
		SemanticMatch: &result.SemanticMatch,
		SkillMatch:    &result.SkillMatch,
		Result:        resultJSON,
	}

	if err := a.analysisRepo.UpdateResult(analysisID, updateData); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Analysis %s completed (overall match %.2f%%)\n", analysisID, result.OverallMatch)
	return nil
}

// findSimilarJobs queries the job index for other catalog titles close to the
// resume. Failures degrade to an empty list; recommendations are an extra,
// not part of the match contract.
func (a *analyzerService) findSimilarJobs(ctx context.Context, resumeText, excludeTitle string) []models.SimilarJob {
	if a.jobIndex == nil {
		return nil
	}

	embedding, err := a.embedder.GenerateEmbedding(ctx, resumeText)
	if err != nil {
		log.Printf("⚠️  Failed to embed resume for job recommendations: %v\n", err)
		return nil
	}

	// Fetch one extra so the requested title can be dropped from its own
	// recommendation list.
	similar, err := a.jobIndex.SearchJobs(ctx, embedding, a.similarJobs+1)
	if err != nil {
		log.Printf("⚠️  Failed to search job index: %v\n", err)
		return nil
	}

	var out []models.SimilarJob
	for _, job := range similar {
		if job.Title == excludeTitle {
			continue
		}
		out = append(out, job)
		if len(out) >= a.similarJobs {
			break
		}
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillscope/internal/config"
	"skillscope/internal/model"
	"skillscope/internal/repository"
	"skillscope/internal/service"
)

// Seeds a local database with a recruiter's job, its question batches, and a
// few candidates so the assessment flow can be exercised end to end.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.Load()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	skillRepo := repository.NewSkillRepo(db)
	jobRepo := repository.NewJobRepo(db)
	candidateRepo := repository.NewCandidateRepo(db)
	candidateSkillRepo := repository.NewCandidateSkillRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	attemptRepo := repository.NewAttemptRepo(db)
	registrationRepo := repository.NewRegistrationRepo(db)

	jobSvc := service.NewJobService(jobRepo, skillRepo, registrationRepo, attemptRepo, candidateRepo)

	job, err := jobSvc.Create(ctx, service.CreateJobInput{
		RecruiterID:     "recruiter-1",
		Title:           "Machine Learning Engineer",
		Company:         "Acme Analytics",
		Location:        "Remote",
		Description:     "Builds and ships ML-backed product features.",
		ExperienceMin:   3,
		ExperienceMax:   6,
		DurationMinutes: 30,
		NumQuestions:    10,
		Schedule:        time.Now().Add(24 * time.Hour),
		Skills: []service.SkillInput{
			{Name: "Machine Learning", Priority: "medium"},
			{Name: "Data Science", Priority: "low"},
		},
	})
	if err != nil {
		log.Fatalf("Failed to create job: %v", err)
	}
	log.Printf("Created job %s (%s)", job.ID, job.Title)

	var questions []model.Question
	for _, skill := range []string{"Machine Learning", "Data Science"} {
		for _, band := range []string{model.BandGood, model.BandBetter, model.BandPerfect} {
			for i := 1; i <= 8; i++ {
				options := []string{
					fmt.Sprintf("Option A for %s %s #%d", skill, band, i),
					fmt.Sprintf("Option B for %s %s #%d", skill, band, i),
					fmt.Sprintf("Option C for %s %s #%d", skill, band, i),
					fmt.Sprintf("Option D for %s %s #%d", skill, band, i),
				}
				questions = append(questions, model.Question{
					JobID:   job.ID,
					Skill:   skill,
					Text:    fmt.Sprintf("Sample %s question #%d (%s difficulty)?", skill, i, band),
					Options: options,
					Answer:  options[(i-1)%4],
					Band:    band,
				})
			}
		}
	}
	if err := questionRepo.InsertMany(ctx, questions); err != nil {
		log.Fatalf("Failed to insert questions: %v", err)
	}
	log.Printf("Inserted %d questions", len(questions))

	candidates := []struct {
		candidate     model.Candidate
		proficiencies map[string]int
	}{
		{
			candidate: model.Candidate{
				Name:              "Asha Rao",
				Email:             "asha@example.com",
				YearsOfExperience: 4.5,
				Degree:            "MSc Data Science",
			},
			proficiencies: map[string]int{
				"Machine Learning": model.ProficiencyIntermediate,
				"Data Science":     model.ProficiencyAdvanced,
			},
		},
		{
			candidate: model.Candidate{
				Name:              "Tom Becker",
				Email:             "tom@example.com",
				YearsOfExperience: 2,
				Degree:            "BSc Computer Science",
			},
			proficiencies: map[string]int{
				"Machine Learning": model.ProficiencyBeginner,
			},
		},
	}
	for _, c := range candidates {
		candidate := c.candidate
		if err := candidateRepo.Create(ctx, &candidate); err != nil {
			log.Fatalf("Failed to create candidate %s: %v", candidate.Name, err)
		}
		for skill, level := range c.proficiencies {
			cs := &model.CandidateSkill{
				CandidateID: candidate.ID,
				Skill:       skill,
				Proficiency: level,
			}
			if err := candidateSkillRepo.Upsert(ctx, cs); err != nil {
				log.Fatalf("Failed to upsert candidate skill: %v", err)
			}
		}
		attemptID, err := jobSvc.Register(ctx, job.ID, candidate.ID)
		if err != nil {
			log.Fatalf("Failed to register %s: %v", candidate.Name, err)
		}
		log.Printf("Registered %s with attempt %s", candidate.Name, attemptID)
	}

	log.Println("Seed complete")
}

package db

import "context"

// WorkerStore defines roster database operations
type WorkerStore interface {
	GetWorkers(ctx context.Context) ([]Worker, error)
	GetWorker(ctx context.Context, id string) (*Worker, error)
	InsertWorker(ctx context.Context, worker *Worker) error
}

// JobStore defines job and job-type database operations
type JobStore interface {
	GetJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	InsertJob(ctx context.Context, job *Job) error
	UpdateJobStatus(ctx context.Context, id, status string) error
	GetJobType(ctx context.Context, id string) (*JobType, error)
	GetJobTypes(ctx context.Context) ([]JobType, error)
}

// AssignmentStore defines assignment database operations
type AssignmentStore interface {
	GetAssignments(ctx context.Context) ([]Assignment, error)
	InsertAssignment(ctx context.Context, assignment *Assignment) error

	// DispatchJob persists the assignment and moves its job to dispatched
	// atomically
	DispatchJob(ctx context.Context, assignment *Assignment) error
}

// Database combines all store interfaces
type Database interface {
	WorkerStore
	JobStore
	AssignmentStore
}

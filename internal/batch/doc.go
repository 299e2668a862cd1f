// Package batch formats many transcripts concurrently.
//
// Each transcript is an independent job: jobs share no state, so the runner
// only bounds concurrency, stamps each job with a correlation id for logging,
// and returns results in input order. Cancelling the context stops workers
// from starting new jobs; jobs already running see the cancelled context.
package batch

package delivery

import (
	"context"
	"log"
	"time"

	"atm-stream-generator/internal/metrics"
	"atm-stream-generator/internal/models"
	"atm-stream-generator/internal/repository"
	"atm-stream-generator/internal/services/synthesis"
)

// pacingSleep is the gap after each successful send within a batch, so the
// ingestion endpoint is not hit with back-to-back requests.
const pacingSleep = 100 * time.Millisecond

// Streamer drives continuous generation: every interval it synthesizes and
// sends one batch of transactions.
type Streamer struct {
	sender    *Sender
	engine    *synthesis.Engine
	repo      *repository.PopulationRepository
	batchSize int
	interval  time.Duration
}

func NewStreamer(sender *Sender, engine *synthesis.Engine, repo *repository.PopulationRepository, batchSize int, interval time.Duration) *Streamer {
	return &Streamer{
		sender:    sender,
		engine:    engine,
		repo:      repo,
		batchSize: batchSize,
		interval:  interval,
	}
}

// Run generates and sends batches until ctx is cancelled.
func (st *Streamer) Run(ctx context.Context) error {
	for {
		st.sendBatch(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(st.interval):
		}
	}
}

// sendBatch synthesizes and delivers one batch. Failed sends are logged and
// the record is dropped.
func (st *Streamer) sendBatch(ctx context.Context) []models.Transaction {
	transactions := make([]models.Transaction, 0, st.batchSize)
	for i := 0; i < st.batchSize; i++ {
		if ctx.Err() != nil {
			return transactions
		}

		tx := st.engine.Synthesize(st.repo.ATMs(), st.repo.Customers())
		metrics.TransactionsGenerated.Inc()
		transactions = append(transactions, tx)

		if err := st.sender.Send(ctx, tx); err != nil {
			log.Printf("ERROR: %v", err)
			continue
		}
		log.Printf("Transaction %s sent successfully", tx.TransactionID[:8])
		time.Sleep(pacingSleep)
	}
	return transactions
}

package cli

import (
	"context"
	"fmt"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/seed"
	"github.com/roach88/dashview/internal/session"
	"github.com/roach88/dashview/internal/store"
)

// Collection sources, in precedence order.
const (
	SourceDatabase = "db"
	SourceSeed     = "seed"
	SourceDefault  = "default"
)

// collection is the starting data for a session and where it came from.
type collection struct {
	Records    []model.Record
	Source     string
	Owner      *seed.Owner // nil when the source carries no owner profile
	SearchTerm string      // initial query from a seed file
}

// loadCollection picks the starting collection: the database snapshot if
// it holds records, then the seed file, then the built-in data.
func (o *RootOptions) loadCollection(ctx context.Context) (collection, error) {
	logger := o.Logger()

	if o.Database != "" {
		st, err := store.Open(o.Database)
		if err != nil {
			return collection{}, fmt.Errorf("failed to open database: %w", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()

		records, err := st.LoadCollection(ctx)
		if err != nil {
			return collection{}, err
		}
		if len(records) > 0 {
			logger.Debug("collection loaded", "source", SourceDatabase, "path", o.Database, "records", len(records))
			return collection{Records: records, Source: SourceDatabase}, nil
		}
		logger.Debug("database snapshot is empty", "path", o.Database)
	}

	if o.Seed != "" {
		doc, err := seed.LoadFile(o.Seed)
		if err != nil {
			return collection{}, err
		}
		logger.Debug("collection loaded", "source", SourceSeed, "path", o.Seed, "records", len(doc.Pharmacies))
		return collection{
			Records:    doc.Pharmacies,
			Source:     SourceSeed,
			Owner:      doc.Owner,
			SearchTerm: doc.SearchTerm,
		}, nil
	}

	owner := seed.DefaultOwner()
	records := seed.Default()
	logger.Debug("collection loaded", "source", SourceDefault, "records", len(records))
	return collection{Records: records, Source: SourceDefault, Owner: &owner}, nil
}

// newSession builds a session over the resolved collection. A seed's search
// term becomes the initial query.
func (o *RootOptions) newSession(ctx context.Context) (*session.Session, collection, error) {
	coll, err := o.loadCollection(ctx)
	if err != nil {
		return nil, collection{}, err
	}
	sess, err := session.New(coll.Records,
		session.WithLogger(o.Logger()),
		session.WithPageSize(o.PageSize),
	)
	if err != nil {
		return nil, collection{}, err
	}
	if coll.SearchTerm != "" {
		sess.SetQuery(coll.SearchTerm)
	}
	return sess, coll, nil
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/ports"
)

const sessionCollection = "operator_sessions"

// SessionRepository stores operator sessions in MongoDB. Expired documents
// are removed by a TTL index on expires_at and ignored on read until then.
type SessionRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ ports.SessionStore = (*SessionRepository)(nil)

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionCollection), now: time.Now}
}

type mongoSession struct {
	ID        string    `bson:"_id"`
	Token     string    `bson:"token"`
	Roles     []string  `bson:"roles"`
	IssuedAt  time.Time `bson:"issued_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// EnsureIndexes creates the TTL index that expires sessions.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("create session ttl index: %w", err)
	}
	return nil
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session, ttl time.Duration) error {
	roles := make([]string, len(session.Roles))
	for i, role := range session.Roles {
		roles[i] = string(role)
	}
	doc := mongoSession{
		ID:        session.ID,
		Token:     session.Token,
		Roles:     roles,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: r.now().Add(ttl).UTC(),
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (domain.Session, error) {
	var doc mongoSession
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("find session: %w", err)
	}
	if !doc.ExpiresAt.After(r.now()) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return domain.Restore(doc.ID, doc.Token, domain.ParseRoles(doc.Roles), doc.IssuedAt.UTC()), nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

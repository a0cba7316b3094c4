package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/gfranca/atalho/internal/infrastructure/db"
	"github.com/gfranca/atalho/internal/processing/links"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LinksRepository struct {
	coll *mongo.Collection
}

type linkDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Code        string             `bson:"code"`
	URL         string             `bson:"url"`
	Clicks      int64              `bson:"clicks"`
	CreatedAt   time.Time          `bson:"createdAt"`
	LastClicked *time.Time         `bson:"lastClicked,omitempty"`
}

func NewLinksRepository(m *db.Mongo) (*LinksRepository, error) {
	repo := &LinksRepository{coll: m.Collection("links")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The unique index on code is the authoritative uniqueness gate; the
	// service's generate+insert retry loop depends on it.
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_code"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
	})
	if err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *LinksRepository) Insert(ctx context.Context, link *links.Link) error {
	doc := linkDoc{
		Code:      link.Code,
		URL:       link.URL,
		Clicks:    link.Clicks,
		CreatedAt: link.CreatedAt.UTC(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err == nil {
		return nil
	}

	if mongo.IsDuplicateKeyError(err) {
		return links.ErrCodeTaken
	}

	return err
}

func (r *LinksRepository) FindByCode(ctx context.Context, code string) (*links.Link, error) {
	var doc linkDoc
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&doc)
	if err == nil {
		return mapLinkDoc(doc), nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, links.ErrNotFound
	}

	return nil, err
}

// ListAll returns a fresh snapshot of every link, newest first.
func (r *LinksRepository) ListAll(ctx context.Context) ([]*links.Link, error) {
	cur, err := r.coll.Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*links.Link, 0)
	for cur.Next(ctx) {
		var doc linkDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, mapLinkDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *LinksRepository) DeleteByCode(ctx context.Context, code string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IncrementClick bumps clicks and stamps lastClicked in a single
// FindOneAndUpdate, so concurrent redirects on one code never lose an
// increment.
func (r *LinksRepository) IncrementClick(ctx context.Context, code string, at time.Time) (*links.Link, error) {
	update := bson.M{
		"$inc": bson.M{"clicks": 1},
		"$set": bson.M{"lastClicked": at.UTC()},
	}

	var doc linkDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"code": code},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return mapLinkDoc(doc), nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, links.ErrNotFound
	}

	return nil, err
}

func mapLinkDoc(doc linkDoc) *links.Link {
	return &links.Link{
		Code:        doc.Code,
		URL:         doc.URL,
		Clicks:      doc.Clicks,
		CreatedAt:   doc.CreatedAt,
		LastClicked: doc.LastClicked,
	}
}

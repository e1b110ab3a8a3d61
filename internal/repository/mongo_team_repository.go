package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/nba-team-service/internal/domain"
)

type teamDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Location      string             `bson:"location"`
	Conference    string             `bson:"conference"`
	Championships int                `bson:"championships"`
	CreatedOn     time.Time          `bson:"createdOn"`
}

func (d teamDocument) toDomain() *domain.Team {
	return &domain.Team{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Location:      d.Location,
		Conference:    d.Conference,
		Championships: d.Championships,
		CreatedOn:     d.CreatedOn,
	}
}

// MongoTeamRepository stores team records as documents.
type MongoTeamRepository struct {
	coll *mongo.Collection
}

// NewMongoTeamRepository constructs repository.
func NewMongoTeamRepository(coll *mongo.Collection) *MongoTeamRepository {
	return &MongoTeamRepository{coll: coll}
}

// EnsureIndexes creates the unique indexes declared by the schema.
func (r *MongoTeamRepository) EnsureIndexes(ctx context.Context) error {
	for _, field := range domain.UniqueFields() {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create %s index: %w", field, err)
		}
	}
	return nil
}

func (r *MongoTeamRepository) Create(ctx context.Context, fields domain.TeamFields) (*domain.Team, error) {
	if err := domain.ValidateNew(fields); err != nil {
		return nil, err
	}

	var team domain.Team
	fields.Apply(&team)
	doc := teamDocument{
		ID:            primitive.NewObjectID(),
		Name:          team.Name,
		Location:      team.Location,
		Conference:    team.Conference,
		Championships: team.Championships,
		CreatedOn:     time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, wrapMongoError(err)
	}
	return doc.toDomain(), nil
}

func (r *MongoTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc teamDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, wrapMongoError(err)
	}
	return doc.toDomain(), nil
}

func (r *MongoTeamRepository) UpdateByID(ctx context.Context, id string, fields domain.TeamFields) (*domain.Team, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateChange(fields); err != nil {
		return nil, err
	}
	if fields.Empty() {
		return r.GetByID(ctx, id)
	}

	set := bson.M{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Location != nil {
		set["location"] = *fields.Location
	}
	if fields.Conference != nil {
		set["conference"] = *fields.Conference
	}
	if fields.Championships != nil {
		set["championships"] = *fields.Championships
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc teamDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, wrapMongoError(err)
	}
	return doc.toDomain(), nil
}

func (r *MongoTeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdOn", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []teamDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	result := make([]domain.Team, 0, len(docs))
	for _, d := range docs {
		result = append(result, *d.toDomain())
	}
	return result, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w for value %q: %v", ErrBadIdentifier, id, err)
	}
	return oid, nil
}

func wrapMongoError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	default:
		return err
	}
}

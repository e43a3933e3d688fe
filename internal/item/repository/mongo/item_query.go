package mongo

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	mongoDriver "go.mongodb.org/mongo-driver/v2/mongo"

	"item-service/internal/item/repository"
)

func byID(id bson.ObjectID) bson.D {
	return bson.D{{Key: repository.FieldID, Value: id}}
}

// buildUpdatePipeline turns the explicit field set into a single $set stage.
// Only present fields are included. Values go through $literal so a name
// starting with "$" is not read as a field path. updated_time becomes
// max(fields.UpdatedTime, stored updated_time + MinTimeStep).
func buildUpdatePipeline(fields repository.UpdateFields) mongoDriver.Pipeline {
	set := bson.D{}
	if fields.Name != nil {
		set = append(set, bson.E{Key: repository.FieldName, Value: literal(*fields.Name)})
	}
	if fields.Type != nil {
		set = append(set, bson.E{Key: repository.FieldType, Value: literal(*fields.Type)})
	}
	set = append(set, bson.E{Key: repository.FieldUpdatedTime, Value: bson.D{{Key: "$max", Value: bson.A{
		fields.UpdatedTime,
		bson.D{{Key: "$add", Value: bson.A{"$" + repository.FieldUpdatedTime, repository.MinTimeStep.Milliseconds()}}},
	}}}})

	return mongoDriver.Pipeline{{{Key: "$set", Value: set}}}
}

func literal(v any) bson.D {
	return bson.D{{Key: "$literal", Value: v}}
}

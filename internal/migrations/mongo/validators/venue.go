package validators

import "go.mongodb.org/mongo-driver/bson"

var VenueValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"name",
			"city",
			"price",
			"capacity",
			"rating",
			"review_count",
			"amenities",
			"availability",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
				"pattern":  slugPattern,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"city": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},

			"capacity": bson.M{
				"bsonType": "object",
				"required": []string{"min", "max"},
				"properties": bson.M{
					"min": bson.M{"bsonType": []string{"int", "long"}, "minimum": 0},
					"max": bson.M{"bsonType": []string{"int", "long"}, "minimum": 0},
				},
			},

			"rating": bson.M{
				"bsonType": "number",
				"minimum":  0,
				"maximum":  5,
			},

			"review_count": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},

			"amenities": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},

			"availability": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
					"pattern":  datePattern,
				},
			},

			"featured": bson.M{
				"bsonType": "bool",
			},

			"coordinates": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"lat": bson.M{"bsonType": "number", "minimum": -90, "maximum": 90},
					"lng": bson.M{"bsonType": "number", "minimum": -180, "maximum": 180},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var ReviewValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"venue_id",
			"user_id",
			"user_name",
			"rating",
			"comment",
			"date",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"venue_id": bson.M{
				"bsonType": "string",
				"pattern":  slugPattern,
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"user_name": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"rating": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  5,
			},

			"comment": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 500,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  datePattern,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var InquiryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
			"message",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"venue_id": bson.M{
				"bsonType": "string",
				"pattern":  slugPattern,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"email": bson.M{
				"bsonType": "string",
			},

			"phone": bson.M{
				"bsonType": "string",
				"pattern":  e164Pattern,
			},

			"message": bson.M{
				"bsonType":  "string",
				"minLength": 10,
				"maxLength": 2000,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

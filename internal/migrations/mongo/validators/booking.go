package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"venue_id",
			"venue_name",
			"check_in_date",
			"check_out_date",
			"guests",
			"total_price",
			"deposit_paid",
			"reference",
			"status",
			"contact_name",
			"contact_email",
			"contact_phone",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"venue_id": bson.M{
				"bsonType": "string",
				"pattern":  slugPattern,
			},

			"venue_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"check_in_date": bson.M{
				"bsonType": "string",
				"pattern":  datePattern,
			},

			"check_out_date": bson.M{
				"bsonType": "string",
				"pattern":  datePattern,
			},

			"guests": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"total_price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},

			"deposit_paid": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},

			"reference": bson.M{
				"bsonType": "string",
				"pattern":  "^[A-Z0-9]{9}$",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"cancelled",
				},
			},

			"contact_name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"contact_email": bson.M{
				"bsonType": "string",
			},

			"contact_phone": bson.M{
				"bsonType": "string",
				"pattern":  e164Pattern,
			},

			"special_requests": bson.M{
				"bsonType":  "string",
				"maxLength": 1000,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dealdesk/dealdesk/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define indexes over it
		field.UUID("transaction_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("type").
			Validate(utils.EnumValidator(
				"CONTRACT", "DISCLOSURE", "INSPECTION", "APPRAISAL",
				"PDF", "DOCUMENT", "SPREADSHEET", "OTHER")),
		field.String("original_name").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Int64("size").NonNegative(),
		field.String("mime_type").NotEmpty(),
		field.JSON("parsed_data", map[string]any{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Int("fields_extracted").Default(0).NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE transaction
		edge.From("transaction", Transaction.Type).
			Ref("documents").
			Field("transaction_id").
			Required().
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("transaction_id", "uploaded_at"),
	}
}

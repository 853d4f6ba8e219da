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

type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("status").
			Default("ACTIVE").
			Validate(utils.EnumValidator("ACTIVE", "PENDING", "CLOSED", "CANCELLED")),
		field.String("property_address").NotEmpty(),
		field.String("address").Optional(),
		field.String("city").Optional(),
		field.String("state").Optional().
			Validate(utils.StateCodeValidator()),
		field.String("zip_code").Optional(),
		field.Float("price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("commission_percent").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("client_name").Optional(),
		field.String("seller_name").Optional(),
		field.Time("closing_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("contract_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("listing_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("property_type").Optional(),
		field.Int("bedrooms").Optional().Nillable().NonNegative(),
		field.Float("bathrooms").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,1)"}),
		field.Int("square_footage").Optional().Nillable().NonNegative(),
		field.String("lot_size").Optional(),
		field.Int("year_built").Optional().Nillable(),
		field.String("mls_number").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE transaction -> MANY documents
		edge.To("documents", Document.Type),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mls_number"),
		index.Fields("status", "created_at"),
	}
}

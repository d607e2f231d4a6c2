package repositories

import (
	"strconv"
	"strings"

	"inventory-app/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Entity enumerates the tables the generic delete and autocomplete operations
// may touch. Table names arriving from the boundary are parsed into this enum
// once; everything past ParseEntity works on a known kind.
type Entity int

const (
	EntityItem Entity = iota
	EntityPulledItem
	EntityPurchaseRequest
	EntityRequestDelivered
	EntityLog
)

func ParseEntity(name string) (Entity, error) {
	switch strings.ToLower(name) {
	case "item":
		return EntityItem, nil
	case "pulleditem":
		return EntityPulledItem, nil
	case "purchaserequest":
		return EntityPurchaseRequest, nil
	case "requestdelivered":
		return EntityRequestDelivered, nil
	case "log":
		return EntityLog, nil
	default:
		return 0, &models.UnknownEntityError{Name: name}
	}
}

func (e Entity) model() interface{} {
	switch e {
	case EntityItem:
		return &models.Item{}
	case EntityPulledItem:
		return &models.PulledItem{}
	case EntityPurchaseRequest:
		return &models.PurchaseRequest{}
	case EntityRequestDelivered:
		return &models.RequestDelivered{}
	default:
		return &models.Log{}
	}
}

// intKeyed reports whether the entity uses plain integer primary keys. Only
// those tables get their ids parsed as integers; the snowflake-keyed history
// tables take their ids as 64-bit values carried in string form.
func (e Entity) intKeyed() bool {
	return e == EntityItem || e == EntityLog
}

// TableRepository implements the generic per-table operations behind the
// delete buttons and the autocomplete datalists.
type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db}
}

// DeleteByID removes one row outright. Item rows can be hard-deleted here
// because the caller is the single-row "delete this record" action, not the
// bulk path that archives items.
func (r *TableRepository) DeleteByID(tableName string, id string) error {
	entity, err := ParseEntity(tableName)
	if err != nil {
		return err
	}
	if entity == EntityLog {
		return &models.UnknownEntityError{Name: tableName}
	}

	key, err := parseID(entity, id)
	if err != nil {
		return err
	}

	res := r.db.Delete(entity.model(), "id = ?", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNoMatch
	}
	return nil
}

// DeleteSelected is the bulk path. Items are soft-deleted so their history
// stays resolvable; every other table loses the rows for good.
func (r *TableRepository) DeleteSelected(tableName string, ids []string) (int64, error) {
	entity, err := ParseEntity(tableName)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, &models.ValidationError{Message: "No items selected."}
	}

	keys := make([]int64, 0, len(ids))
	for _, id := range ids {
		key, err := parseID(entity, id)
		if err != nil {
			return 0, err
		}
		keys = append(keys, key)
	}

	var res *gorm.DB
	if entity == EntityItem {
		res = r.db.Model(&models.Item{}).Where("id IN ?", keys).Update("is_deleted", true)
	} else {
		res = r.db.Delete(entity.model(), "id IN ?", keys)
	}
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, models.ErrNoMatch
	}
	return res.RowsAffected, nil
}

func parseID(entity Entity, id string) (int64, error) {
	key, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		if entity.intKeyed() {
			return 0, &models.ValidationError{Message: "Invalid id: " + id}
		}
		return 0, &models.ValidationError{Message: "Invalid record id: " + id}
	}
	return key, nil
}

// Fields the autocomplete may read, per entity, keyed by payload name.
var uniqueFieldColumns = map[Entity]map[string]string{
	EntityItem: {
		"itemCode": "item_code",
		"itemName": "item_name",
		"unit":     "unit",
		"addedBy":  "added_by",
	},
	EntityPulledItem: {
		"releasedBy": "released_by",
		"receivedBy": "received_by",
	},
	EntityPurchaseRequest: {
		"requestedBy": "requested_by",
	},
	EntityRequestDelivered: {
		"deliveredBy": "delivered_by",
		"receivedBy":  "received_by",
	},
}

var entityTableNames = map[Entity]string{
	EntityItem:             "items",
	EntityPulledItem:       "pulled_items",
	EntityPurchaseRequest:  "purchase_requests",
	EntityRequestDelivered: "request_delivereds",
}

// UniqueField returns the distinct values of a whitelisted column across the
// non-deleted rows of a table, sorted for display. With a relation the value
// is read one hop away on the owning item instead, e.g. the distinct item
// names behind the pulled-items table.
func (r *TableRepository) UniqueField(tableName, field, relation, relationField string) ([]string, error) {
	entity, err := ParseEntity(tableName)
	if err != nil {
		return nil, err
	}
	columns, ok := uniqueFieldColumns[entity]
	if !ok {
		return nil, &models.UnknownEntityError{Name: tableName}
	}
	table := entityTableNames[entity]

	var values []string
	if relation != "" {
		if relation != "item" {
			return nil, &models.ValidationError{Message: "Invalid relation: " + relation}
		}
		column, ok := uniqueFieldColumns[EntityItem][relationField]
		if !ok {
			return nil, &models.ValidationError{Message: "Invalid field: " + relationField}
		}
		err = r.db.Table(table).
			Joins("JOIN items ON items.id = "+table+".item_id").
			Where(table+".is_deleted = ?", false).
			Distinct().
			Pluck("items."+column, &values).Error
	} else {
		column, ok := columns[field]
		if !ok {
			return nil, &models.ValidationError{Message: "Invalid field: " + field}
		}
		err = r.db.Table(table).
			Where("is_deleted = ?", false).
			Distinct().
			Pluck(column, &values).Error
	}
	if err != nil {
		return nil, err
	}

	values = slices.DeleteFunc(values, func(v string) bool { return v == "" })
	slices.Sort(values)
	return values, nil
}

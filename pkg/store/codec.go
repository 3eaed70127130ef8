package store

import (
	"fmt"
	"strings"

	"farmdash/entities"
	"farmdash/pkg/recordstore"
)

// Codec translates one entity type between its UI shape and backend records.
// UI fields map one-to-one onto backend fields; reference fields arrive from
// forms as strings and are coerced to integers on every write.
type Codec[T, F any] interface {
	// Entity is the short entity name used in logs and metrics.
	Entity() string
	// Table is the backend table name.
	Table() string
	// Fields lists the backend fields requested on reads.
	Fields() []string
	// Encode validates a form and converts it into a backend record without an Id.
	Encode(form F) (recordstore.Record, error)
	// Decode converts a backend record, Id included, into an entity.
	Decode(r recordstore.Record) (T, error)
	// Record converts an entity back into its backend record, Id included.
	Record(v T) recordstore.Record
}

// Backend field names shared by several tables.
const (
	FieldFarmID      = "FarmId_c"
	FieldType        = "Type_c"
	FieldDate        = "Date_c"
	FieldDescription = "Description_c"
	FieldCompleted   = "Completed_c"
)

func decodeID(r recordstore.Record) (int, error) {
	id, ok := r.ID()
	if !ok {
		return 0, fmt.Errorf("record without %s", recordstore.IDField)
	}
	return id, nil
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return validationf("%s is required", field)
	}
	return nil
}

func requireDate(field, v string) error {
	if err := requireText(field, v); err != nil {
		return err
	}
	if _, err := entities.ParseDate(v); err != nil {
		return validationf("%s %q is not a YYYY-MM-DD date", field, v)
	}
	return nil
}

func coerceRef(field string, v entities.FormValue) (int, error) {
	if v.Empty() {
		return 0, validationf("%s is required", field)
	}
	n, err := v.Int()
	if err != nil {
		return 0, validationf("%s: %v", field, err)
	}
	return n, nil
}

func coerceAmount(field string, v entities.FormValue) (float64, error) {
	if v.Empty() {
		return 0, validationf("%s is required", field)
	}
	f, err := v.Float()
	if err != nil {
		return 0, validationf("%s: %v", field, err)
	}
	if f < 0 {
		return 0, validationf("%s must not be negative", field)
	}
	return f, nil
}

func intField(r recordstore.Record, key string) int {
	n, _ := r.Int(key)
	return n
}

func floatField(r recordstore.Record, key string) float64 {
	f, _ := r.Float(key)
	return f
}

// FarmCodec maps farms onto the farm_c table.
type FarmCodec struct{}

const (
	farmName     = "Name_c"
	farmLocation = "Location_c"
	farmSize     = "Size_c"
	farmSizeUnit = "SizeUnit_c"
)

func (FarmCodec) Entity() string   { return "farm" }
func (FarmCodec) Table() string    { return "farm_c" }
func (FarmCodec) Fields() []string { return []string{farmName, farmLocation, farmSize, farmSizeUnit} }

func (FarmCodec) Encode(f entities.FarmForm) (recordstore.Record, error) {
	if err := requireText("name", f.Name); err != nil {
		return nil, err
	}
	size, err := coerceAmount("size", f.Size)
	if err != nil {
		return nil, err
	}
	if !f.SizeUnit.Valid() {
		return nil, validationf("unknown size unit %q", f.SizeUnit)
	}
	return recordstore.Record{
		farmName:     f.Name,
		farmLocation: f.Location,
		farmSize:     size,
		farmSizeUnit: string(f.SizeUnit),
	}, nil
}

func (FarmCodec) Decode(r recordstore.Record) (entities.Farm, error) {
	id, err := decodeID(r)
	if err != nil {
		return entities.Farm{}, err
	}
	return entities.Farm{
		ID:       id,
		Name:     r.String(farmName),
		Location: r.String(farmLocation),
		Size:     floatField(r, farmSize),
		SizeUnit: entities.SizeUnit(r.String(farmSizeUnit)),
	}, nil
}

func (FarmCodec) Record(f entities.Farm) recordstore.Record {
	return recordstore.Record{
		recordstore.IDField: f.ID,
		farmName:            f.Name,
		farmLocation:        f.Location,
		farmSize:            f.Size,
		farmSizeUnit:        string(f.SizeUnit),
	}
}

// CropCodec maps crops onto the crop_c table.
type CropCodec struct{}

const (
	cropType            = "CropType_c"
	cropPlantingDate    = "PlantingDate_c"
	cropExpectedHarvest = "ExpectedHarvest_c"
	cropField           = "Field_c"
	cropStatus          = "Status_c"
	cropNotes           = "Notes_c"
)

func (CropCodec) Entity() string { return "crop" }
func (CropCodec) Table() string  { return "crop_c" }
func (CropCodec) Fields() []string {
	return []string{cropType, cropPlantingDate, cropExpectedHarvest, cropField, cropStatus, cropNotes, FieldFarmID}
}

func (CropCodec) Encode(f entities.CropForm) (recordstore.Record, error) {
	farmID, err := coerceRef("farmId", f.FarmID)
	if err != nil {
		return nil, err
	}
	if !f.Type.Valid() {
		return nil, validationf("unknown crop type %q", f.Type)
	}
	if !f.Status.Valid() {
		return nil, validationf("unknown crop status %q", f.Status)
	}
	if err := requireDate("plantingDate", f.PlantingDate); err != nil {
		return nil, err
	}
	if err := requireDate("expectedHarvest", f.ExpectedHarvest); err != nil {
		return nil, err
	}
	if err := requireText("field", f.Field); err != nil {
		return nil, err
	}
	return recordstore.Record{
		cropType:            string(f.Type),
		cropPlantingDate:    f.PlantingDate,
		cropExpectedHarvest: f.ExpectedHarvest,
		cropField:           f.Field,
		cropStatus:          string(f.Status),
		cropNotes:           f.Notes,
		FieldFarmID:         farmID,
	}, nil
}

func (CropCodec) Decode(r recordstore.Record) (entities.Crop, error) {
	id, err := decodeID(r)
	if err != nil {
		return entities.Crop{}, err
	}
	return entities.Crop{
		ID:              id,
		FarmID:          intField(r, FieldFarmID),
		Type:            entities.CropType(r.String(cropType)),
		PlantingDate:    r.String(cropPlantingDate),
		ExpectedHarvest: r.String(cropExpectedHarvest),
		Field:           r.String(cropField),
		Status:          entities.CropStatus(r.String(cropStatus)),
		Notes:           r.String(cropNotes),
	}, nil
}

func (CropCodec) Record(c entities.Crop) recordstore.Record {
	return recordstore.Record{
		recordstore.IDField: c.ID,
		cropType:            string(c.Type),
		cropPlantingDate:    c.PlantingDate,
		cropExpectedHarvest: c.ExpectedHarvest,
		cropField:           c.Field,
		cropStatus:          string(c.Status),
		cropNotes:           c.Notes,
		FieldFarmID:         c.FarmID,
	}
}

// TaskCodec maps tasks onto the task_c table.
type TaskCodec struct{}

const (
	taskTitle    = "Title_c"
	taskDueDate  = "DueDate_c"
	taskPriority = "Priority_c"
	taskCropID   = "CropId_c"
)

func (TaskCodec) Entity() string { return "task" }
func (TaskCodec) Table() string  { return "task_c" }
func (TaskCodec) Fields() []string {
	return []string{taskTitle, FieldDescription, taskDueDate, taskPriority, FieldCompleted, FieldFarmID, taskCropID}
}

func (TaskCodec) Encode(f entities.TaskForm) (recordstore.Record, error) {
	farmID, err := coerceRef("farmId", f.FarmID)
	if err != nil {
		return nil, err
	}
	var cropID any
	if !f.CropID.Empty() {
		n, err := coerceRef("cropId", f.CropID)
		if err != nil {
			return nil, err
		}
		cropID = n
	}
	if err := requireText("title", f.Title); err != nil {
		return nil, err
	}
	if err := requireDate("dueDate", f.DueDate); err != nil {
		return nil, err
	}
	if !f.Priority.Valid() {
		return nil, validationf("unknown priority %q", f.Priority)
	}
	return recordstore.Record{
		taskTitle:        f.Title,
		FieldDescription: f.Description,
		taskDueDate:      f.DueDate,
		taskPriority:     string(f.Priority),
		FieldCompleted:   f.Completed,
		FieldFarmID:      farmID,
		taskCropID:       cropID,
	}, nil
}

func (TaskCodec) Decode(r recordstore.Record) (entities.Task, error) {
	id, err := decodeID(r)
	if err != nil {
		return entities.Task{}, err
	}
	t := entities.Task{
		ID:          id,
		FarmID:      intField(r, FieldFarmID),
		Title:       r.String(taskTitle),
		Description: r.String(FieldDescription),
		DueDate:     r.String(taskDueDate),
		Priority:    entities.Priority(r.String(taskPriority)),
		Completed:   r.Bool(FieldCompleted),
	}
	if n, ok := r.Int(taskCropID); ok {
		t.CropID = &n
	}
	return t, nil
}

func (TaskCodec) Record(t entities.Task) recordstore.Record {
	var cropID any
	if t.CropID != nil {
		cropID = *t.CropID
	}
	return recordstore.Record{
		recordstore.IDField: t.ID,
		taskTitle:           t.Title,
		FieldDescription:    t.Description,
		taskDueDate:         t.DueDate,
		taskPriority:        string(t.Priority),
		FieldCompleted:      t.Completed,
		FieldFarmID:         t.FarmID,
		taskCropID:          cropID,
	}
}

// TransactionCodec maps transactions onto the transaction_c table.
type TransactionCodec struct{}

const (
	txCategory = "Category_c"
	txAmount   = "Amount_c"
)

func (TransactionCodec) Entity() string { return "transaction" }
func (TransactionCodec) Table() string  { return "transaction_c" }
func (TransactionCodec) Fields() []string {
	return []string{FieldType, txCategory, txAmount, FieldDate, FieldDescription, FieldFarmID}
}

func (TransactionCodec) Encode(f entities.TransactionForm) (recordstore.Record, error) {
	farmID, err := coerceRef("farmId", f.FarmID)
	if err != nil {
		return nil, err
	}
	if !f.Type.Valid() {
		return nil, validationf("unknown transaction type %q", f.Type)
	}
	if !f.Type.AllowsCategory(f.Category) {
		return nil, validationf("category %q is not valid for %s", f.Category, f.Type)
	}
	amount, err := coerceAmount("amount", f.Amount)
	if err != nil {
		return nil, err
	}
	if err := requireDate("date", f.Date); err != nil {
		return nil, err
	}
	return recordstore.Record{
		FieldType:        string(f.Type),
		txCategory:       f.Category,
		txAmount:         amount,
		FieldDate:        f.Date,
		FieldDescription: f.Description,
		FieldFarmID:      farmID,
	}, nil
}

func (TransactionCodec) Decode(r recordstore.Record) (entities.Transaction, error) {
	id, err := decodeID(r)
	if err != nil {
		return entities.Transaction{}, err
	}
	return entities.Transaction{
		ID:          id,
		FarmID:      intField(r, FieldFarmID),
		Type:        entities.TransactionType(r.String(FieldType)),
		Category:    r.String(txCategory),
		Amount:      floatField(r, txAmount),
		Date:        r.String(FieldDate),
		Description: r.String(FieldDescription),
	}, nil
}

func (TransactionCodec) Record(t entities.Transaction) recordstore.Record {
	return recordstore.Record{
		recordstore.IDField: t.ID,
		FieldType:           string(t.Type),
		txCategory:          t.Category,
		txAmount:            t.Amount,
		FieldDate:           t.Date,
		FieldDescription:    t.Description,
		FieldFarmID:         t.FarmID,
	}
}

// WeatherCodec maps weather observations onto the weather_c table.
type WeatherCodec struct{}

const (
	weatherTemperature   = "Temperature_c"
	weatherCondition     = "Condition_c"
	weatherHumidity      = "Humidity_c"
	weatherPrecipitation = "Precipitation_c"
)

func (WeatherCodec) Entity() string { return "weather" }
func (WeatherCodec) Table() string  { return "weather_c" }
func (WeatherCodec) Fields() []string {
	return []string{weatherTemperature, weatherCondition, weatherHumidity, weatherPrecipitation, FieldDate}
}

func (WeatherCodec) Encode(f entities.WeatherForm) (recordstore.Record, error) {
	temp, err := f.Temperature.Int()
	if err != nil {
		return nil, validationf("temperature: %v", err)
	}
	humidity, err := f.Humidity.Int()
	if err != nil {
		return nil, validationf("humidity: %v", err)
	}
	if humidity < 0 || humidity > 100 {
		return nil, validationf("humidity %d is not a percentage", humidity)
	}
	precip, err := coerceAmount("precipitation", f.Precipitation)
	if err != nil {
		return nil, err
	}
	if err := requireText("condition", f.Condition); err != nil {
		return nil, err
	}
	if err := requireDate("date", f.Date); err != nil {
		return nil, err
	}
	return recordstore.Record{
		weatherTemperature:   temp,
		weatherCondition:     f.Condition,
		weatherHumidity:      humidity,
		weatherPrecipitation: precip,
		FieldDate:            f.Date,
	}, nil
}

func (WeatherCodec) Decode(r recordstore.Record) (entities.Weather, error) {
	id, err := decodeID(r)
	if err != nil {
		return entities.Weather{}, err
	}
	return entities.Weather{
		ID:            id,
		Temperature:   intField(r, weatherTemperature),
		Condition:     r.String(weatherCondition),
		Humidity:      intField(r, weatherHumidity),
		Precipitation: floatField(r, weatherPrecipitation),
		Date:          r.String(FieldDate),
	}, nil
}

func (WeatherCodec) Record(w entities.Weather) recordstore.Record {
	return recordstore.Record{
		recordstore.IDField:  w.ID,
		weatherTemperature:   w.Temperature,
		weatherCondition:     w.Condition,
		weatherHumidity:      w.Humidity,
		weatherPrecipitation: w.Precipitation,
		FieldDate:            w.Date,
	}
}

// Compile-time checks that every codec satisfies the contract.
var (
	_ Codec[entities.Farm, entities.FarmForm]               = FarmCodec{}
	_ Codec[entities.Crop, entities.CropForm]               = CropCodec{}
	_ Codec[entities.Task, entities.TaskForm]               = TaskCodec{}
	_ Codec[entities.Transaction, entities.TransactionForm] = TransactionCodec{}
	_ Codec[entities.Weather, entities.WeatherForm]         = WeatherCodec{}
)

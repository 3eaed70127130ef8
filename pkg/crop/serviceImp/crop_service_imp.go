package serviceImp

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/crop/service"
	"farmdash/pkg/logger"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
)

const (
	loadFailed  = "Failed to load crops"
	unknownFarm = "Unknown Farm"
)

type cropSvc struct {
	crops    store.Adapter[entities.Crop, entities.CropForm]
	farms    store.Adapter[entities.Farm, entities.FarmForm]
	items    *page.Collection[entities.Crop]
	farmList *page.Collection[entities.Farm]
	crud     *page.Crud[entities.Crop, entities.CropForm]
	life     page.Lifecycle
	log      *zap.Logger
}

func NewCropService(crops store.Adapter[entities.Crop, entities.CropForm], farms store.Adapter[entities.Farm, entities.FarmForm], lggr *zap.Logger) service.CropService {
	s := &cropSvc{
		crops:    crops,
		farms:    farms,
		items:    page.NewCollection(func(c entities.Crop) int { return c.ID }),
		farmList: page.NewCollection(func(f entities.Farm) int { return f.ID }),
		log:      logger.Or(lggr).Named("page.crops"),
	}
	s.crud = page.NewCrud(s.items, crops, page.Messages{
		Created:      "Crop added successfully!",
		Updated:      "Crop updated successfully!",
		Deleted:      "Crop deleted successfully!",
		SaveFailed:   "Failed to save crop",
		DeleteFailed: "Failed to delete crop",
	}, s.log)
	return s
}

func (s *cropSvc) load(ctx context.Context) error {
	var (
		crops []entities.Crop
		farms []entities.Farm
	)
	if err := page.LoadAll(ctx, page.Into(&crops, s.crops.List), page.Into(&farms, s.farms.List)); err != nil {
		s.log.Error("load", zap.Error(err))
		return err
	}
	s.items.Set(crops)
	s.farmList.Set(farms)
	return nil
}

func (s *cropSvc) Load(ctx context.Context) error { return s.life.Run(ctx, loadFailed, s.load) }
func (s *cropSvc) Status() page.Status            { return s.life.Status() }

func (s *cropSvc) View(f service.Filter) service.View {
	crops := s.items.Snapshot()
	farms := s.farmList.Snapshot()

	names := make(map[int]string, len(farms))
	farmOpts := make([]entities.Option, 0, len(farms))
	for _, fm := range farms {
		names[fm.ID] = fm.Name
		farmOpts = append(farmOpts, entities.Option{Value: strconv.Itoa(fm.ID), Label: fm.Name})
	}

	shown := page.Filter(crops,
		func(c entities.Crop) bool { return page.MatchAny(f.Search, string(c.Type), c.Field) },
		page.Is(f.Status, func(c entities.Crop) entities.CropStatus { return c.Status }),
	)
	rows := make([]service.Row, 0, len(shown))
	for _, c := range shown {
		name, ok := names[c.FarmID]
		if !ok {
			name = unknownFarm
		}
		rows = append(rows, service.Row{Crop: c, FarmName: name})
	}
	return service.View{
		Crops:         rows,
		Shown:         len(rows),
		Total:         len(crops),
		FarmOptions:   farmOpts,
		TypeOptions:   entities.CropTypeOptions,
		StatusOptions: entities.CropStatusOptions,
	}
}

func (s *cropSvc) SubmitCreate(ctx context.Context, form entities.CropForm) (entities.Crop, error) {
	return s.crud.Create(ctx, form)
}

func (s *cropSvc) SubmitUpdate(ctx context.Context, id int, form entities.CropForm) (entities.Crop, error) {
	return s.crud.Update(ctx, id, form)
}

func (s *cropSvc) Remove(ctx context.Context, id int, confirmed bool) error {
	return s.crud.Remove(ctx, id, confirmed)
}

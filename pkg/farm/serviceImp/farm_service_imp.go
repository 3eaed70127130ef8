package serviceImp

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/farm/service"
	"farmdash/pkg/logger"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
)

const loadFailed = "Failed to load farms"

type farmSvc struct {
	farms store.Adapter[entities.Farm, entities.FarmForm]
	items *page.Collection[entities.Farm]
	crud  *page.Crud[entities.Farm, entities.FarmForm]
	life  page.Lifecycle
	log   *zap.Logger
}

func NewFarmService(farms store.Adapter[entities.Farm, entities.FarmForm], lggr *zap.Logger) service.FarmService {
	s := &farmSvc{
		farms: farms,
		items: page.NewCollection(func(f entities.Farm) int { return f.ID }),
		log:   logger.Or(lggr).Named("page.farms"),
	}
	s.crud = page.NewCrud(s.items, farms, page.Messages{
		Created:      "Farm added successfully!",
		Updated:      "Farm updated successfully!",
		Deleted:      "Farm deleted successfully!",
		SaveFailed:   "Failed to save farm",
		DeleteFailed: "Failed to delete farm",
	}, s.log)
	return s
}

func (s *farmSvc) load(ctx context.Context) error {
	farms, err := s.farms.List(ctx)
	if err != nil {
		s.log.Error("load", zap.Error(err))
		return err
	}
	s.items.Set(farms)
	return nil
}

func (s *farmSvc) Load(ctx context.Context) error { return s.life.Run(ctx, loadFailed, s.load) }
func (s *farmSvc) Status() page.Status            { return s.life.Status() }

func (s *farmSvc) View() service.View {
	farms := s.items.Snapshot()
	if farms == nil {
		farms = []entities.Farm{}
	}
	return service.View{Farms: farms, Count: len(farms)}
}

func (s *farmSvc) Options() []entities.Option {
	farms := s.items.Snapshot()
	out := make([]entities.Option, 0, len(farms))
	for _, f := range farms {
		out = append(out, entities.Option{Value: strconv.Itoa(f.ID), Label: f.Name})
	}
	return out
}

func (s *farmSvc) Header() service.Header {
	h := service.Header{Farms: s.Options()}
	if farms := s.items.Snapshot(); len(farms) > 0 {
		h.Selected = farms[0].ID
	}
	return h
}

func (s *farmSvc) SubmitCreate(ctx context.Context, form entities.FarmForm) (entities.Farm, error) {
	return s.crud.Create(ctx, form)
}

func (s *farmSvc) SubmitUpdate(ctx context.Context, id int, form entities.FarmForm) (entities.Farm, error) {
	return s.crud.Update(ctx, id, form)
}

func (s *farmSvc) Remove(ctx context.Context, id int, confirmed bool) error {
	return s.crud.Remove(ctx, id, confirmed)
}

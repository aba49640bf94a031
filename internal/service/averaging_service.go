package service

import (
	"context"
	"image"
	"time"

	"github.com/anime-shed/image-averager-go/internal/averager"
	"github.com/anime-shed/image-averager-go/internal/display"
	"github.com/anime-shed/image-averager-go/internal/observer"
	"github.com/anime-shed/image-averager-go/internal/repository"
	"github.com/anime-shed/image-averager-go/internal/strategy"
	"github.com/anime-shed/image-averager-go/pkg/models"
)

// AveragingService runs the load, resize, average and display pipeline
type AveragingService interface {
	// AverageSource loads src and averages it at full size, without display
	AverageSource(ctx context.Context, src models.Source) (*models.AveragedResult, error)

	// PrepareComparison loads, resizes and averages src
	PrepareComparison(ctx context.Context, src models.Source) (*models.Comparison, error)

	// Display prepares the comparison and hands it to the display sink
	Display(ctx context.Context, src models.Source) error
}

type averagingService struct {
	imageRepo repository.ImageRepository
	resizer   strategy.ResizeStrategy
	sink      display.Sink
	events    observer.Subject
}

// NewAveragingService creates a new averaging service
func NewAveragingService(
	imageRepository repository.ImageRepository,
	resizer strategy.ResizeStrategy,
	sink display.Sink,
	events observer.Subject,
) AveragingService {
	return &averagingService{
		imageRepo: imageRepository,
		resizer:   resizer,
		sink:      sink,
		events:    events,
	}
}

func (s *averagingService) AverageSource(ctx context.Context, src models.Source) (*models.AveragedResult, error) {
	img, err := s.load(ctx, src)
	if err != nil {
		return nil, err
	}

	averaged, avg, err := s.average(ctx, src, img)
	if err != nil {
		return nil, err
	}

	return &models.AveragedResult{
		Source:  src,
		Average: avg,
		Image:   averaged,
	}, nil
}

func (s *averagingService) PrepareComparison(ctx context.Context, src models.Source) (*models.Comparison, error) {
	img, err := s.load(ctx, src)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resized, err := s.resizer.Resize(img)
	if err != nil {
		s.publish(ctx, observer.PipelineEvent{
			EventType:    observer.ResizeFailed,
			Source:       src,
			Duration:     time.Since(start),
			ErrorMessage: err.Error(),
			Metadata: map[string]interface{}{
				"strategy": s.resizer.GetStrategyName(),
			},
		})
		return nil, err
	}
	s.publish(ctx, observer.PipelineEvent{
		EventType: observer.ImageResized,
		Source:    src,
		Duration:  time.Since(start),
		Success:   true,
		Metadata: map[string]interface{}{
			"strategy":    s.resizer.GetStrategyName(),
			"from_width":  img.Bounds().Dx(),
			"from_height": img.Bounds().Dy(),
			"width":       resized.Bounds().Dx(),
			"height":      resized.Bounds().Dy(),
		},
	})

	averaged, avg, err := s.average(ctx, src, resized)
	if err != nil {
		return nil, err
	}

	return &models.Comparison{
		Source:   src,
		Original: resized,
		Averaged: averaged,
		Average:  avg,
	}, nil
}

func (s *averagingService) Display(ctx context.Context, src models.Source) error {
	comparison, err := s.PrepareComparison(ctx, src)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.sink.Show(*comparison); err != nil {
		s.publish(ctx, observer.PipelineEvent{
			EventType:    observer.DisplayFailed,
			Source:       src,
			Duration:     time.Since(start),
			ErrorMessage: err.Error(),
		})
		return err
	}

	s.publish(ctx, observer.PipelineEvent{
		EventType: observer.ComparisonDisplayed,
		Source:    src,
		Duration:  time.Since(start),
		Success:   true,
	})
	return nil
}

func (s *averagingService) load(ctx context.Context, src models.Source) (image.Image, error) {
	start := time.Now()
	img, err := s.imageRepo.FetchImage(ctx, src)
	if err != nil {
		s.publish(ctx, observer.PipelineEvent{
			EventType:    observer.SourceLoadFailed,
			Source:       src,
			Duration:     time.Since(start),
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	s.publish(ctx, observer.PipelineEvent{
		EventType: observer.SourceLoaded,
		Source:    src,
		Duration:  time.Since(start),
		Success:   true,
		Metadata: map[string]interface{}{
			"width":  img.Bounds().Dx(),
			"height": img.Bounds().Dy(),
		},
	})
	return img, nil
}

func (s *averagingService) average(ctx context.Context, src models.Source, img image.Image) (*image.NRGBA, models.Color, error) {
	start := time.Now()
	averaged, avg, err := averager.AverageImage(img)
	if err != nil {
		s.publish(ctx, observer.PipelineEvent{
			EventType:    observer.AveragingFailed,
			Source:       src,
			ErrorMessage: err.Error(),
		})
		return nil, models.Color{}, err
	}

	s.publish(ctx, observer.PipelineEvent{
		EventType: observer.ImageAveraged,
		Source:    src,
		Duration:  time.Since(start),
		Success:   true,
		Metadata: map[string]interface{}{
			"color":  avg.Hex(),
			"packed": avg.Packed(),
		},
	})
	return averaged, avg, nil
}

func (s *averagingService) publish(ctx context.Context, event observer.PipelineEvent) {
	if s.events != nil {
		s.events.NotifyObservers(ctx, event)
	}
}

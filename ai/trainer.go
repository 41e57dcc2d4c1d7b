package ai

import (
	"chatty/domain"
	"chatty/errors"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TrainingConfig holds the hyper-parameters of a training run.
type TrainingConfig struct {
	Hidden       []int
	DropoutRate  float64
	Epochs       int
	BatchSize    int
	LearningRate float64
	Momentum     float64
	Decay        float64
	Seed         uint64
}

func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Hidden:       []int{128, 64},
		DropoutRate:  0.5,
		Epochs:       200,
		BatchSize:    5,
		LearningRate: 0.01,
		Momentum:     0.9,
		Decay:        1e-6,
		Seed:         42,
	}
}

// Sample is one (features, one-hot label) training pair.
type Sample struct {
	Features domain.FeatureVector
	Label    []float64
}

// Samples encodes every training example of the catalog against the label set.
func Samples(catalog domain.Catalog, vectorizer *Vectorizer, labels domain.LabelSet) ([]Sample, error) {
	var samples []Sample
	for _, example := range catalog.Examples() {
		label, ok := labels.OneHot(example.Tag)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownLabel, example.Tag)
		}
		samples = append(samples, Sample{Features: vectorizer.Features(example.Pattern), Label: label})
	}
	if len(samples) == 0 {
		return nil, errors.ErrNoSamples
	}
	return samples, nil
}

// EpochStats summarizes one pass over the training set.
type EpochStats struct {
	Epoch    int
	Loss     float64
	Accuracy float64
}

type Trainer struct {
	log    *slog.Logger
	config TrainingConfig
	rng    *rand.Rand
}

func NewTrainer(log *slog.Logger, config TrainingConfig) *Trainer {
	return &Trainer{
		log:    log,
		config: config,
		rng:    rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15)),
	}
}

// Fit trains a fresh network on the samples with mini-batch SGD
// (Nesterov momentum, time-based learning rate decay) and categorical cross-entropy.
func (t *Trainer) Fit(ctx context.Context, samples []Sample) (*Network, []EpochStats, error) {
	if len(samples) == 0 {
		return nil, nil, errors.ErrNoSamples
	}
	inputs, outputs := len(samples[0].Features), len(samples[0].Label)
	network := NewNetwork(inputs, t.config.Hidden, outputs, t.config.DropoutRate, t.rng)
	velocity := network.zeroLike()

	history := make([]EpochStats, 0, t.config.Epochs)
	order := lo.Range(len(samples))
	iterations := 0

	for epoch := 1; epoch <= t.config.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, history, err
		}
		t.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		var totalLoss float64
		var hits int
		for _, batch := range lo.Chunk(order, t.config.BatchSize) {
			grads := network.zeroLike()
			for _, idx := range batch {
				sample := samples[idx]
				probs, tr := network.forwardTrain(sample.Features, t.rng)
				totalLoss += crossEntropy(probs, sample.Label)
				if floats.MaxIdx(probs) == floats.MaxIdx(sample.Label) {
					hits++
				}
				network.backward(probs, sample.Label, tr, grads)
			}
			lr := t.config.LearningRate / (1 + t.config.Decay*float64(iterations))
			t.step(network, grads, velocity, lr, float64(len(batch)))
			iterations++
		}

		stats := EpochStats{
			Epoch:    epoch,
			Loss:     totalLoss / float64(len(samples)),
			Accuracy: float64(hits) / float64(len(samples)),
		}
		history = append(history, stats)
		t.log.Debug("Epoch done", "epoch", epoch, "loss", stats.Loss, "accuracy", stats.Accuracy)
	}
	return network, history, nil
}

// step applies v = m*v - lr*g ; w += m*v - lr*g on every parameter.
func (t *Trainer) step(network *Network, grads, velocity []*Dense, lr, batchSize float64) {
	m := t.config.Momentum
	update := func(params, grad, vel []float64) {
		p := mat.NewVecDense(len(params), params)
		g := mat.NewVecDense(len(grad), grad)
		v := mat.NewVecDense(len(vel), vel)
		v.ScaleVec(m, v)
		v.AddScaledVec(v, -lr/batchSize, g)
		p.AddScaledVec(p, m, v)
		p.AddScaledVec(p, -lr/batchSize, g)
	}
	for l, layer := range network.Layers {
		update(layer.Weights, grads[l].Weights, velocity[l].Weights)
		update(layer.Biases, grads[l].Biases, velocity[l].Biases)
	}
}

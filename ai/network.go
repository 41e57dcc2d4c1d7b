package ai

import (
	"chatty/domain"
	"chatty/errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	ActivationReLU    = "relu"
	ActivationSoftmax = "softmax"
)

// Dense is a fully connected layer. Weights are stored row-major, one row of
// Inputs weights per output unit.
type Dense struct {
	Inputs     int       `json:"inputs"`
	Outputs    int       `json:"outputs"`
	Weights    []float64 `json:"weights"`
	Biases     []float64 `json:"biases"`
	Activation string    `json:"activation"`
}

// newDense uses Glorot uniform initialization and zero biases.
func newDense(inputs, outputs int, activation string, rng *rand.Rand) *Dense {
	limit := math.Sqrt(6 / float64(inputs+outputs))
	weights := make([]float64, inputs*outputs)
	for i := range weights {
		weights[i] = (rng.Float64()*2 - 1) * limit
	}
	return &Dense{
		Inputs:     inputs,
		Outputs:    outputs,
		Weights:    weights,
		Biases:     make([]float64, outputs),
		Activation: activation,
	}
}

// weights and biases are views sharing the layer's backing slices.
func (d *Dense) weights() *mat.Dense {
	return mat.NewDense(d.Outputs, d.Inputs, d.Weights)
}

func (d *Dense) biases() *mat.VecDense {
	return mat.NewVecDense(d.Outputs, d.Biases)
}

func (d *Dense) linear(x mat.Vector) *mat.VecDense {
	z := mat.NewVecDense(d.Outputs, nil)
	z.MulVec(d.weights(), x)
	z.AddVec(z, d.biases())
	return z
}

func (d *Dense) activate(z *mat.VecDense) *mat.VecDense {
	switch d.Activation {
	case ActivationSoftmax:
		softmax(z.RawVector().Data)
	default:
		relu(z.RawVector().Data)
	}
	return z
}

// Network is a stack of dense layers. Every hidden layer is followed by
// dropout during training; the last layer outputs a probability distribution.
type Network struct {
	Layers      []*Dense `json:"layers"`
	DropoutRate float64  `json:"dropout_rate"`
}

// NewNetwork builds inputs -> hidden... -> outputs with ReLU hidden units and a softmax head.
func NewNetwork(inputs int, hidden []int, outputs int, dropoutRate float64, rng *rand.Rand) *Network {
	network := &Network{DropoutRate: dropoutRate}
	prev := inputs
	for _, size := range hidden {
		network.Layers = append(network.Layers, newDense(prev, size, ActivationReLU, rng))
		prev = size
	}
	network.Layers = append(network.Layers, newDense(prev, outputs, ActivationSoftmax, rng))
	return network
}

func (n *Network) InputSize() int {
	return n.Layers[0].Inputs
}

func (n *Network) OutputSize() int {
	return n.Layers[len(n.Layers)-1].Outputs
}

// Validate checks that every layer is shaped for its neighbours, which the
// matrix views rely on.
func (n *Network) Validate() error {
	if len(n.Layers) == 0 {
		return fmt.Errorf("%w: no layers", errors.ErrMalformedModel)
	}
	for l, layer := range n.Layers {
		switch {
		case layer == nil:
			return fmt.Errorf("%w: layer %d is missing", errors.ErrMalformedModel, l)
		case layer.Inputs <= 0 || layer.Outputs <= 0:
			return fmt.Errorf("%w: layer %d is %dx%d", errors.ErrMalformedModel, l, layer.Outputs, layer.Inputs)
		case len(layer.Weights) != layer.Inputs*layer.Outputs || len(layer.Biases) != layer.Outputs:
			return fmt.Errorf("%w: layer %d holds %d weights and %d biases for %dx%d",
				errors.ErrMalformedModel, l, len(layer.Weights), len(layer.Biases), layer.Outputs, layer.Inputs)
		case l > 0 && layer.Inputs != n.Layers[l-1].Outputs:
			return fmt.Errorf("%w: layer %d expects %d inputs, previous layer has %d outputs",
				errors.ErrMalformedModel, l, layer.Inputs, n.Layers[l-1].Outputs)
		}
	}
	return nil
}

// Predict runs inference, dropout disabled. Probabilities follow label-set order.
func (n *Network) Predict(features domain.FeatureVector) ([]float64, error) {
	if len(n.Layers) == 0 {
		return nil, fmt.Errorf("empty network")
	}
	if len(features) != n.InputSize() {
		return nil, fmt.Errorf("%w: got %d, want %d", errors.ErrFeatureWidth, len(features), n.InputSize())
	}
	var a mat.Vector = mat.NewVecDense(len(features), features)
	for _, layer := range n.Layers {
		a = layer.activate(layer.linear(a))
	}
	return a.(*mat.VecDense).RawVector().Data, nil
}

// trace keeps what backpropagation needs from a training forward pass.
type trace struct {
	inputs  []*mat.VecDense // input of each layer
	outputs []*mat.VecDense // activation of each layer, before dropout
	masks   []*mat.VecDense // scaled dropout masks of hidden layers
}

func (n *Network) forwardTrain(x []float64, rng *rand.Rand) ([]float64, trace) {
	tr := trace{
		inputs:  make([]*mat.VecDense, len(n.Layers)),
		outputs: make([]*mat.VecDense, len(n.Layers)),
		masks:   make([]*mat.VecDense, len(n.Layers)),
	}
	a := mat.NewVecDense(len(x), x)
	last := len(n.Layers) - 1
	for l, layer := range n.Layers {
		tr.inputs[l] = a
		out := layer.activate(layer.linear(a))
		tr.outputs[l] = out
		if l == last {
			return out.RawVector().Data, tr
		}
		tr.masks[l] = dropoutMask(out.Len(), n.DropoutRate, rng)
		dropped := mat.NewVecDense(out.Len(), nil)
		dropped.MulElemVec(out, tr.masks[l])
		a = dropped
	}
	return a.RawVector().Data, tr
}

// backward accumulates the cross-entropy gradients of one sample into grads.
func (n *Network) backward(probs, target []float64, tr trace, grads []*Dense) {
	delta := mat.NewVecDense(len(probs), nil)
	delta.SubVec(mat.NewVecDense(len(probs), probs), mat.NewVecDense(len(target), target))
	for l := len(n.Layers) - 1; l >= 0; l-- {
		layer, grad := n.Layers[l], grads[l]
		gradWeights, gradBiases := grad.weights(), grad.biases()
		gradWeights.RankOne(gradWeights, 1, delta, tr.inputs[l])
		gradBiases.AddVec(gradBiases, delta)
		if l == 0 {
			return
		}
		prev := mat.NewVecDense(layer.Inputs, nil)
		prev.MulVec(layer.weights().T(), delta)
		// ReLU derivative, then the same mask as the forward pass.
		prevData := prev.RawVector().Data
		for i, out := range tr.outputs[l-1].RawVector().Data {
			if out <= 0 {
				prevData[i] = 0
			}
		}
		prev.MulElemVec(prev, tr.masks[l-1])
		delta = prev
	}
}

// zeroLike returns layers shaped like the network with zero parameters.
func (n *Network) zeroLike() []*Dense {
	out := make([]*Dense, len(n.Layers))
	for l, layer := range n.Layers {
		out[l] = &Dense{
			Inputs:  layer.Inputs,
			Outputs: layer.Outputs,
			Weights: make([]float64, len(layer.Weights)),
			Biases:  make([]float64, len(layer.Biases)),
		}
	}
	return out
}

func dropoutMask(size int, rate float64, rng *rand.Rand) *mat.VecDense {
	mask := make([]float64, size)
	if rate <= 0 {
		floats.AddConst(1, mask)
		return mat.NewVecDense(size, mask)
	}
	keep := 1 / (1 - rate)
	for i := range mask {
		if rng.Float64() >= rate {
			mask[i] = keep
		}
	}
	return mat.NewVecDense(size, mask)
}

func relu(z []float64) {
	for i, v := range z {
		if v < 0 {
			z[i] = 0
		}
	}
}

func softmax(z []float64) {
	floats.AddConst(-floats.Max(z), z)
	for i, v := range z {
		z[i] = math.Exp(v)
	}
	floats.Scale(1/floats.Sum(z), z)
}

func crossEntropy(probs, target []float64) float64 {
	loss := 0.0
	for i, t := range target {
		if t > 0 {
			loss -= t * math.Log(math.Max(probs[i], 1e-12))
		}
	}
	return loss
}

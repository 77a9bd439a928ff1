// Package pairkitmock holds gomock doubles of the pairkit capabilities.
package pairkitmock

import "go.llib.dev/specialize/pkg/pairkit"

//go:generate mockgen -destination=mock.go -package=pairkitmock . DifferenceStorer

// DifferenceStorer is the int8 instance of pairkit.StoresValueDifference.
type DifferenceStorer interface {
	pairkit.StoresValueDifference[int8]
}

/*
Package zcashscalecalc provides back-of-the-envelope capacity calculations for zcash.

The primary goal of zcash-scale-calc is to estimate the depth of the Merkle
commitment tree needed to hold every commitment produced over the lifetime of a
network, or conversely the lifetime supported by a tree of a given depth.

All computations are carried on quantities with units (see pkg/quantity), so that
a formula mixing incompatible units fails instead of producing a wrong number.

The CLI lives under cmd/zcash-scale-calc.
*/
package zcashscalecalc

// Package nnls solves the non-negative least-squares problem
// minimize ||v - A x||^2 subject to x >= 0, the fitting step of the
// correction engine. Two interchangeable backends are provided:
//
//   - SolverActiveSet (default): Lawson-Hanson active-set NNLS, built on the
//     matrix package's QR/MatVec kernel. Terminates in a finite number of
//     passive-set changes and needs no external numerical dependency.
//   - SolverLBFGS: a projected-gradient quasi-Newton solver built on
//     gonum.org/v1/gonum/optimize's LBFGS. gonum's optimize package has no
//     native box-constraint support, so the objective/gradient evaluated at
//     each step first clamps the candidate point to the non-negative
//     orthant; this is a projected approximation of true L-BFGS-B, not a
//     textbook implementation of it, and tends to scale better than the
//     active-set backend as n grows.
//
// Both backends honor a caller-supplied context.Context, checked between
// outer iterations: a cancelled context aborts with no partial commitment.
package nnls

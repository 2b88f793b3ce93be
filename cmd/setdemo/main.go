// Command setdemo walks through the library: the basic operations on two
// overlapping sets, the inclusion-exclusion count over multiples of 3 and 5,
// power sets, partitions, multiset arithmetic, and the algebraic laws.
package main

import (
	"log"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/rdeusser/settheory/multiset"
	"github.com/rdeusser/settheory/set"
	"github.com/rdeusser/settheory/setlaws"
	"github.com/rdeusser/settheory/setops"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	demoOperations(sugar)
	demoCounting(sugar)
	demoPowerSet(sugar)
	demoPartition(sugar)
	demoMultiset(sugar)
	demoLaws(sugar)
}

func demoOperations(sugar *zap.SugaredLogger) {
	a := set.NewSet(1, 2, 3, 4)
	b := set.NewSet(3, 4, 5, 6)

	sugar.Infow("basic operations",
		"A", color.CyanString(a.String()),
		"B", color.CyanString(b.String()),
		"union", setops.Union(a, b).String(),
		"intersection", setops.Intersect(a, b).String(),
		"difference", setops.Difference(a, b).String(),
		"symmetric difference", setops.SymmetricDifference(a, b).String(),
	)
}

func demoCounting(sugar *zap.SugaredLogger) {
	universe := set.NewSet[int]()
	for n := 1; n <= 100; n++ {
		universe.Add(n)
	}

	a := universe.Filter(func(n int) bool { return n%3 == 0 })
	b := universe.Filter(func(n int) bool { return n%5 == 0 })

	sugar.Infow("inclusion-exclusion over 1..100",
		"multiples of 3", a.Cardinality(),
		"multiples of 5", b.Cardinality(),
		"multiples of 15", setops.Intersect(a, b).Cardinality(),
		"|A∪B| by formula", setops.InclusionExclusion2(a, b),
		"|A∪B| materialized", setops.Union(a, b).Cardinality(),
	)
}

func demoPowerSet(sugar *zap.SugaredLogger) {
	a := set.NewSet("x", "y", "z")

	family, err := a.PowerSet()
	if err != nil {
		sugar.Fatalw("power set", "error", err)
	}

	subsets := lo.Map(family.ToSlice(), func(s set.Interface[string], _ int) string {
		return s.String()
	})

	sugar.Infow("power set",
		"A", color.CyanString(a.String()),
		"cardinality", family.Cardinality(),
		"subsets", subsets,
	)
}

func demoPartition(sugar *zap.SugaredLogger) {
	original := set.NewSet(1, 2, 3, 4, 5, 6, 7, 8)

	valid := set.NewFamily(
		set.NewSet(1),
		set.NewSet(2, 3, 4),
		set.NewSet(5, 6),
		set.NewSet(7, 8),
	)
	overlapping := set.NewFamily(
		set.NewSet(1, 2, 3),
		set.NewSet(3, 4, 5),
		set.NewSet(6, 7, 8),
	)

	sugar.Infow("partition checking",
		"original", color.CyanString(original.String()),
		"disjoint parts", setops.IsPartition(valid, original),
		"overlapping parts", setops.IsPartition(overlapping, original),
	)
}

func demoMultiset(sugar *zap.SugaredLogger) {
	p := multiset.NewMultiset("a", "a", "a", "c", "d", "d")
	q := multiset.NewMultiset("a", "a", "b", "c", "c")

	sugar.Infow("multiset arithmetic",
		"P", color.CyanString(p.String()),
		"Q", color.CyanString(q.String()),
		"union (max)", p.Union(q).String(),
		"intersection (min)", p.Intersect(q).String(),
		"difference (clamped)", p.Difference(q).String(),
		"sum", p.Sum(q).String(),
		"distinct items of P", p.ToSet().String(),
	)
}

func demoLaws(sugar *zap.SugaredLogger) {
	u := set.NewSet[int]()
	for n := 1; n <= 10; n++ {
		u.Add(n)
	}

	a := set.NewSet(1, 2, 3, 4)
	b := set.NewSet(3, 4, 5, 6)
	c := set.NewSet(2, 4, 6, 8)

	sugar.Infow("algebraic laws",
		"identity", setlaws.Identity(a, u),
		"domination", setlaws.Domination(a, u),
		"complementation", setlaws.Complementation(a, u),
		"idempotent", setlaws.Idempotent(a),
		"involution", setlaws.Involution(a, u),
		"absorption", setlaws.Absorption(a, b),
		"commutative", setlaws.Commutative(a, b),
		"associative", setlaws.Associative(a, b, c),
		"distributive", setlaws.Distributive(a, b, c),
		"de morgan", setlaws.DeMorgan(a, b, u),
		"complement bounds", setlaws.ComplementBounds(u),
	)
}

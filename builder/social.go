// Package builder: fixed named graphs from the social-network literature.
//
// Both graphs below are standard references for validating centrality
// measures; vertex sets and edge lists follow the published topologies.

package builder

import (
	"fmt"

	"github.com/graphmetric/centrality/core"
)

// krackhardtKiteEdges is Krackhardt's kite: a 10-vertex undirected graph
// with a dense "kite body" (0..6), a broker (7), and a two-vertex tail
// (8, 9). Indexes follow the conventional labeling (0=Andre ... 9=Jane).
var krackhardtKiteEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 5},
	{1, 3}, {1, 4}, {1, 6},
	{2, 3}, {2, 5},
	{3, 4}, {3, 5}, {3, 6},
	{4, 6},
	{5, 6}, {5, 7},
	{6, 7},
	{7, 8},
	{8, 9},
}

// florentineFamilyEdges are the 20 marriage ties among 15 Renaissance
// Florentine families (Padgett & Ansell).
var florentineFamilyEdges = [][2]string{
	{"Acciaiuoli", "Medici"},
	{"Castellani", "Peruzzi"},
	{"Castellani", "Strozzi"},
	{"Castellani", "Barbadori"},
	{"Medici", "Barbadori"},
	{"Medici", "Ridolfi"},
	{"Medici", "Tornabuoni"},
	{"Medici", "Albizzi"},
	{"Medici", "Salviati"},
	{"Salviati", "Pazzi"},
	{"Peruzzi", "Strozzi"},
	{"Peruzzi", "Bischeri"},
	{"Strozzi", "Ridolfi"},
	{"Strozzi", "Bischeri"},
	{"Ridolfi", "Tornabuoni"},
	{"Tornabuoni", "Guadagni"},
	{"Albizzi", "Ginori"},
	{"Albizzi", "Guadagni"},
	{"Bischeri", "Guadagni"},
	{"Guadagni", "Lamberteschi"},
}

// KrackhardtKite builds Krackhardt's kite graph using cfg.idFn for the
// ten vertex IDs, emitting edges in the published order.
func KrackhardtKite() Constructor {
	return func(g *core.Graph, cfg config) error {
		const kiteNodes = 10
		ids, err := addIndexed(g, cfg, kiteNodes)
		if err != nil {
			return fmt.Errorf("KrackhardtKite: %w", err)
		}
		for _, e := range krackhardtKiteEdges {
			if err = edge(g, cfg, ids[e[0]], ids[e[1]]); err != nil {
				return fmt.Errorf("KrackhardtKite: %w", err)
			}
		}

		return nil
	}
}

// FlorentineFamilies builds the Florentine families marriage network.
// Vertex IDs are the fixed family names; cfg.idFn does not apply.
func FlorentineFamilies() Constructor {
	return func(g *core.Graph, cfg config) error {
		for _, e := range florentineFamilyEdges {
			if err := edge(g, cfg, e[0], e[1]); err != nil {
				return fmt.Errorf("FlorentineFamilies: %w", err)
			}
		}

		return nil
	}
}

// lesMiserablesEdges are the 254 co-appearance ties among the 77
// characters of Victor Hugo's Les Miserables (Knuth, Stanford
// GraphBase).
var lesMiserablesEdges = [][2]string{
	{"Napoleon", "Myriel"},
	{"MlleBaptistine", "Myriel"},
	{"MmeMagloire", "Myriel"},
	{"MmeMagloire", "MlleBaptistine"},
	{"CountessDeLo", "Myriel"},
	{"Geborand", "Myriel"},
	{"Champtercier", "Myriel"},
	{"Cravatte", "Myriel"},
	{"Count", "Myriel"},
	{"OldMan", "Myriel"},
	{"Valjean", "Labarre"},
	{"Valjean", "MmeMagloire"},
	{"Valjean", "MlleBaptistine"},
	{"Valjean", "Myriel"},
	{"Marguerite", "Valjean"},
	{"MmeDeR", "Valjean"},
	{"Isabeau", "Valjean"},
	{"Gervais", "Valjean"},
	{"Listolier", "Tholomyes"},
	{"Fameuil", "Tholomyes"},
	{"Fameuil", "Listolier"},
	{"Blacheville", "Tholomyes"},
	{"Blacheville", "Listolier"},
	{"Blacheville", "Fameuil"},
	{"Favourite", "Tholomyes"},
	{"Favourite", "Listolier"},
	{"Favourite", "Fameuil"},
	{"Favourite", "Blacheville"},
	{"Dahlia", "Tholomyes"},
	{"Dahlia", "Listolier"},
	{"Dahlia", "Fameuil"},
	{"Dahlia", "Blacheville"},
	{"Dahlia", "Favourite"},
	{"Zephine", "Tholomyes"},
	{"Zephine", "Listolier"},
	{"Zephine", "Fameuil"},
	{"Zephine", "Blacheville"},
	{"Zephine", "Favourite"},
	{"Zephine", "Dahlia"},
	{"Fantine", "Tholomyes"},
	{"Fantine", "Listolier"},
	{"Fantine", "Fameuil"},
	{"Fantine", "Blacheville"},
	{"Fantine", "Favourite"},
	{"Fantine", "Dahlia"},
	{"Fantine", "Zephine"},
	{"Fantine", "Marguerite"},
	{"Fantine", "Valjean"},
	{"MmeThenardier", "Fantine"},
	{"MmeThenardier", "Valjean"},
	{"Thenardier", "MmeThenardier"},
	{"Thenardier", "Fantine"},
	{"Thenardier", "Valjean"},
	{"Cosette", "MmeThenardier"},
	{"Cosette", "Valjean"},
	{"Cosette", "Tholomyes"},
	{"Cosette", "Thenardier"},
	{"Javert", "Valjean"},
	{"Javert", "Fantine"},
	{"Javert", "Thenardier"},
	{"Javert", "MmeThenardier"},
	{"Javert", "Cosette"},
	{"Fauchelevent", "Valjean"},
	{"Fauchelevent", "Javert"},
	{"Bamatabois", "Fantine"},
	{"Bamatabois", "Javert"},
	{"Bamatabois", "Valjean"},
	{"Perpetue", "Fantine"},
	{"Simplice", "Perpetue"},
	{"Simplice", "Valjean"},
	{"Simplice", "Fantine"},
	{"Simplice", "Javert"},
	{"Scaufflaire", "Valjean"},
	{"Woman1", "Valjean"},
	{"Woman1", "Javert"},
	{"Judge", "Valjean"},
	{"Judge", "Bamatabois"},
	{"Champmathieu", "Valjean"},
	{"Champmathieu", "Judge"},
	{"Champmathieu", "Bamatabois"},
	{"Brevet", "Judge"},
	{"Brevet", "Champmathieu"},
	{"Brevet", "Valjean"},
	{"Brevet", "Bamatabois"},
	{"Chenildieu", "Judge"},
	{"Chenildieu", "Champmathieu"},
	{"Chenildieu", "Brevet"},
	{"Chenildieu", "Valjean"},
	{"Chenildieu", "Bamatabois"},
	{"Cochepaille", "Judge"},
	{"Cochepaille", "Champmathieu"},
	{"Cochepaille", "Brevet"},
	{"Cochepaille", "Chenildieu"},
	{"Cochepaille", "Valjean"},
	{"Cochepaille", "Bamatabois"},
	{"Pontmercy", "Thenardier"},
	{"Boulatruelle", "Thenardier"},
	{"Eponine", "MmeThenardier"},
	{"Eponine", "Thenardier"},
	{"Anzelma", "Eponine"},
	{"Anzelma", "Thenardier"},
	{"Anzelma", "MmeThenardier"},
	{"Woman2", "Valjean"},
	{"Woman2", "Cosette"},
	{"Woman2", "Javert"},
	{"MotherInnocent", "Fauchelevent"},
	{"MotherInnocent", "Valjean"},
	{"Gribier", "Fauchelevent"},
	{"MmeBurgon", "Jondrette"},
	{"Gavroche", "MmeBurgon"},
	{"Gavroche", "Thenardier"},
	{"Gavroche", "Javert"},
	{"Gavroche", "Valjean"},
	{"Gillenormand", "Cosette"},
	{"Gillenormand", "Valjean"},
	{"Magnon", "Gillenormand"},
	{"Magnon", "MmeThenardier"},
	{"MlleGillenormand", "Gillenormand"},
	{"MlleGillenormand", "Cosette"},
	{"MlleGillenormand", "Valjean"},
	{"MmePontmercy", "MlleGillenormand"},
	{"MmePontmercy", "Pontmercy"},
	{"MlleVaubois", "MlleGillenormand"},
	{"LtGillenormand", "MlleGillenormand"},
	{"LtGillenormand", "Gillenormand"},
	{"LtGillenormand", "Cosette"},
	{"Marius", "MlleGillenormand"},
	{"Marius", "Gillenormand"},
	{"Marius", "Pontmercy"},
	{"Marius", "LtGillenormand"},
	{"Marius", "Cosette"},
	{"Marius", "Valjean"},
	{"Marius", "Tholomyes"},
	{"Marius", "Thenardier"},
	{"Marius", "Eponine"},
	{"Marius", "Gavroche"},
	{"BaronessT", "Gillenormand"},
	{"BaronessT", "Marius"},
	{"Mabeuf", "Marius"},
	{"Mabeuf", "Eponine"},
	{"Mabeuf", "Gavroche"},
	{"Enjolras", "Marius"},
	{"Enjolras", "Gavroche"},
	{"Enjolras", "Javert"},
	{"Enjolras", "Mabeuf"},
	{"Enjolras", "Valjean"},
	{"Combeferre", "Enjolras"},
	{"Combeferre", "Marius"},
	{"Combeferre", "Gavroche"},
	{"Combeferre", "Mabeuf"},
	{"Prouvaire", "Gavroche"},
	{"Prouvaire", "Enjolras"},
	{"Prouvaire", "Combeferre"},
	{"Feuilly", "Gavroche"},
	{"Feuilly", "Enjolras"},
	{"Feuilly", "Prouvaire"},
	{"Feuilly", "Combeferre"},
	{"Feuilly", "Mabeuf"},
	{"Feuilly", "Marius"},
	{"Courfeyrac", "Marius"},
	{"Courfeyrac", "Enjolras"},
	{"Courfeyrac", "Combeferre"},
	{"Courfeyrac", "Gavroche"},
	{"Courfeyrac", "Mabeuf"},
	{"Courfeyrac", "Eponine"},
	{"Courfeyrac", "Feuilly"},
	{"Courfeyrac", "Prouvaire"},
	{"Bahorel", "Combeferre"},
	{"Bahorel", "Gavroche"},
	{"Bahorel", "Courfeyrac"},
	{"Bahorel", "Mabeuf"},
	{"Bahorel", "Enjolras"},
	{"Bahorel", "Feuilly"},
	{"Bahorel", "Prouvaire"},
	{"Bahorel", "Marius"},
	{"Bossuet", "Marius"},
	{"Bossuet", "Courfeyrac"},
	{"Bossuet", "Gavroche"},
	{"Bossuet", "Bahorel"},
	{"Bossuet", "Enjolras"},
	{"Bossuet", "Feuilly"},
	{"Bossuet", "Prouvaire"},
	{"Bossuet", "Combeferre"},
	{"Bossuet", "Mabeuf"},
	{"Bossuet", "Valjean"},
	{"Joly", "Bahorel"},
	{"Joly", "Bossuet"},
	{"Joly", "Gavroche"},
	{"Joly", "Courfeyrac"},
	{"Joly", "Enjolras"},
	{"Joly", "Feuilly"},
	{"Joly", "Prouvaire"},
	{"Joly", "Combeferre"},
	{"Joly", "Mabeuf"},
	{"Joly", "Marius"},
	{"Grantaire", "Bossuet"},
	{"Grantaire", "Enjolras"},
	{"Grantaire", "Combeferre"},
	{"Grantaire", "Courfeyrac"},
	{"Grantaire", "Joly"},
	{"Grantaire", "Gavroche"},
	{"Grantaire", "Bahorel"},
	{"Grantaire", "Feuilly"},
	{"Grantaire", "Prouvaire"},
	{"MotherPlutarch", "Mabeuf"},
	{"Gueulemer", "Thenardier"},
	{"Gueulemer", "Valjean"},
	{"Gueulemer", "MmeThenardier"},
	{"Gueulemer", "Javert"},
	{"Gueulemer", "Gavroche"},
	{"Gueulemer", "Eponine"},
	{"Babet", "Thenardier"},
	{"Babet", "Gueulemer"},
	{"Babet", "Valjean"},
	{"Babet", "MmeThenardier"},
	{"Babet", "Javert"},
	{"Babet", "Gavroche"},
	{"Babet", "Eponine"},
	{"Claquesous", "Thenardier"},
	{"Claquesous", "Babet"},
	{"Claquesous", "Gueulemer"},
	{"Claquesous", "Valjean"},
	{"Claquesous", "MmeThenardier"},
	{"Claquesous", "Javert"},
	{"Claquesous", "Eponine"},
	{"Claquesous", "Enjolras"},
	{"Montparnasse", "Gavroche"},
	{"Montparnasse", "Javert"},
	{"Montparnasse", "Babet"},
	{"Montparnasse", "Gueulemer"},
	{"Montparnasse", "Claquesous"},
	{"Montparnasse", "Valjean"},
	{"Montparnasse", "Thenardier"},
	{"Montparnasse", "Eponine"},
	{"Toussaint", "Cosette"},
	{"Toussaint", "Javert"},
	{"Toussaint", "Valjean"},
	{"Child1", "Gavroche"},
	{"Child2", "Gavroche"},
	{"Child2", "Child1"},
	{"Brujon", "Babet"},
	{"Brujon", "Gueulemer"},
	{"Brujon", "Thenardier"},
	{"Brujon", "Gavroche"},
	{"Brujon", "Eponine"},
	{"Brujon", "Claquesous"},
	{"Brujon", "Montparnasse"},
	{"MmeHucheloup", "Bossuet"},
	{"MmeHucheloup", "Joly"},
	{"MmeHucheloup", "Grantaire"},
	{"MmeHucheloup", "Bahorel"},
	{"MmeHucheloup", "Courfeyrac"},
	{"MmeHucheloup", "Gavroche"},
	{"MmeHucheloup", "Enjolras"},
}

// LesMiserables builds the Les Miserables character co-appearance
// network. Vertex IDs are the fixed character names; cfg.idFn does not
// apply.
func LesMiserables() Constructor {
	return func(g *core.Graph, cfg config) error {
		for _, e := range lesMiserablesEdges {
			if err := edge(g, cfg, e[0], e[1]); err != nil {
				return fmt.Errorf("LesMiserables: %w", err)
			}
		}

		return nil
	}
}

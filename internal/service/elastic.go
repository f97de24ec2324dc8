package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"sajhnaa_back_end/internal/catalog"
	"sajhnaa_back_end/internal/database"
	"sajhnaa_back_end/internal/models"
)

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexProduct indexe un produit du catalogue dans Elasticsearch
func IndexProduct(p models.Product) {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", p.Name)
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      "products",
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
	} else {
		log.Printf("✅ Produit indexé dans Elasticsearch: %s", p.Name)
	}
}

// IndexCatalog indexe le catalogue complet au démarrage.
func IndexCatalog() {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non initialisé, catalogue non indexé (recherche en repli local)")
		return
	}
	for _, p := range catalog.Products() {
		IndexProduct(p)
	}
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// SearchProducts cherche dans l'index par nom, description, matière ou
// catégorie. Si Elastic est indisponible, repli sur le filtrage local du
// catalogue : la recherche ne tombe jamais en panne.
func SearchProducts(query string) ([]models.Product, error) {
	if database.Elastic == nil {
		return searchFallback(query), nil
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "material", "category"},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{"products"},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Printf("⚠️ Elastic injoignable, repli local: %v", err)
		return searchFallback(query), nil
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	results := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		results = append(results, hit.Source)
	}
	return results, nil
}

// searchFallback applique le même filtrage texte que les filtres du magasin.
func searchFallback(query string) []models.Product {
	filters := models.DefaultFilters()
	filters.SearchQuery = query
	return catalog.Apply(catalog.Products(), filters)
}

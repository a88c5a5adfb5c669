package main

import (
	"flag"
	"fmt"

	"autoapple/internal/catalog"
	"autoapple/internal/country"
	"autoapple/internal/resolver"
)

// go run cmd/resolver/main.go -marca="SAMSUNG" -modelo="galaxy a54 5g" -pais="USA"
// Resolve uma entrada avulsa sem tocar nos portais; útil para conferir
// como um registro problemático vai sair.
func main() {
	marca := flag.String("marca", "", "Texto bruto da marca")
	modelo := flag.String("modelo", "", "Texto bruto do modelo")
	pais := flag.String("pais", "", "Texto bruto do país")
	catalogPath := flag.String("catalog", "modelo_comercial.csv", "Arquivo CSV do catálogo")
	flag.Parse()

	store := catalog.LoadCSV(*catalogPath)
	r := &resolver.Resolver{Catalog: store}

	m, mo := r.ResolveBrandModel(*marca, *modelo)
	mo = r.EnsureCataloged(m, mo)

	fmt.Printf("Marca:  %s\n", m)
	fmt.Printf("Modelo: %s\n", mo)
	fmt.Printf("País:   %s\n", country.Resolve(*pais))
}

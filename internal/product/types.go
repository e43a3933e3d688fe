package product

// ExampleQuantity is the quantity reported by the example product endpoint.
const ExampleQuantity = 1

// Product is a hardcoded example resource.
type Product struct {
	Quantity *int
}

// Example returns the product served by GET /product.
func Example() Product {
	q := ExampleQuantity
	return Product{Quantity: &q}
}

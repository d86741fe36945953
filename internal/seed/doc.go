// Package seed supplies record collections to the view engine.
//
// A seed is either the built-in demo dataset (Default) or a YAML/JSON file.
// Files come in two shapes, both accepted by Load:
//
//	# bare list
//	- id: 1
//	  name: Light Pharmacy
//	  city: Cairo
//	  ...
//
//	# dashboard state
//	owner:
//	  email: admin@example.com
//	pharmacies:
//	  - id: 1
//	    ...
//
// Every loaded record is checked against the #Pharmacy CUE definition in
// schema.cue and the collection against model.ValidateCollection.
package seed

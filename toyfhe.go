/*
Package toyfhe is a didactic pure Go implementation of the DGHV somewhat-homomorphic
encryption scheme over the integers. Ciphertexts encrypt single bits, homomorphic
addition and multiplication act as XOR and AND on the plaintexts, and boolean gates
and binary arithmetic circuits are built on top with explicit noise accounting
throughout. The library exists to make the noise budget of homomorphic computation
tangible; it offers neither security nor performance.
*/
package toyfhe

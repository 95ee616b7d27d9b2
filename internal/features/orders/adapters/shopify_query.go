package adapter

// ordersQuery fetches one page of open orders, newest first.
const ordersQuery = `
query CodexEligibleOrders($cursor: String, $pageSize: Int!) {
  orders(first: $pageSize, after: $cursor, sortKey: CREATED_AT, reverse: true, query: "status:open") {
    edges {
      cursor
      node {
        id
        name
        displayFinancialStatus
        fulfillmentStatus
        paymentGatewayNames
        totalOutstandingSet {
          shopMoney {
            amount
            currencyCode
          }
        }
        shippingAddress {
          name
          phone
          address1
          address2
          city
          province
          country
          zip
          latitude
          longitude
        }
        lineItems(first: 250) {
          edges {
            node {
              id
              title
              requiresShipping
              fulfillableQuantity
              fulfillmentService {
                type
              }
            }
          }
        }
        customer {
          displayName
        }
      }
    }
    pageInfo {
      hasNextPage
    }
  }
}
`

// shopQuery is the cheapest query that proves the domain and token are valid.
const shopQuery = `query CodexHealthCheck { shop { name } }`
